package interview

import "context"

// === Интерфейсы ===

type ModelClient interface {
	// CompleteJSON — один запрос к модели в JSON-режиме, возвращает сырой текст ответа.
	CompleteJSON(ctx context.Context, prompt string) (string, error)
}

type Evaluator interface {
	// EvaluateTurn строит промпт для хода интервью и возвращает сырой ответ модели.
	EvaluateTurn(ctx context.Context, req EvalRequest) (string, error)
}
