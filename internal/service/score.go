package service

import (
	"context"

	"github.com/12keith/spelling-bee-backend/internal/logging"
	"github.com/12keith/spelling-bee-backend/internal/models"
	"github.com/12keith/spelling-bee-backend/internal/repo"
)

type ScoreService struct {
	Repo *repo.GormRepo
}

// Submit stamps the row with the username from the verified token, never
// anything client-supplied.
func (s *ScoreService) Submit(ctx context.Context, username string, score int) error {
	l := logging.FromContext(ctx).With("svc", "score.submit")

	if _, err := s.Repo.AppendScore(ctx, username, score); err != nil {
		l.Error("submit_error", "status", 500, "error", err)
		return err
	}

	l.Info("score_saved", "username", username, "score", score)
	return nil
}

func (s *ScoreService) List(ctx context.Context) ([]models.Score, error) {
	return s.Repo.ListScores(ctx)
}
