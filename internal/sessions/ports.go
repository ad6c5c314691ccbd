package sessions

import (
	"context"

	"github.com/intervu-ai/intervu-backend/internal/interview"
)

// === Интерфейсы ===

type Repo interface {
	// Append дописывает ход в текущую сессию; question_index == "1" открывает новую.
	Append(ctx context.Context, turn interview.Turn) error
}

type Store interface {
	Append(ctx context.Context, turn interview.Turn) error
}
