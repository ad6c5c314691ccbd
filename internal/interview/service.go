package interview

import (
	"context"
	"log"
)

type Service struct {
	model ModelClient
	cfg   Config
}

func NewService(model ModelClient, cfg Config) *Service {
	return &Service{
		model: model,
		cfg:   cfg,
	}
}

// EvaluateTurn — главный метод оркестратора: границы блоков → промпт → модель.
// Возвращает сырой текст ответа модели, разбором занимается доставка.
func (s *Service) EvaluateTurn(ctx context.Context, req EvalRequest) (string, error) {
	ranges, err := s.cfg.Ranges(req.NumQuestions)
	if err != nil {
		return "", err
	}

	prompt := BuildPrompt(req, ranges)

	log.Printf("[reply] index=%s field=%s speciality=%s num=%s",
		req.QuestionIndex, req.Field, req.Speciality, req.NumQuestions)

	return s.model.CompleteJSON(ctx, prompt)
}
