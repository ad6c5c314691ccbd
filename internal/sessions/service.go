package sessions

import (
	"context"

	"github.com/intervu-ai/intervu-backend/internal/interview"
)

type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Append(ctx context.Context, turn interview.Turn) error {
	return s.repo.Append(ctx, turn)
}
