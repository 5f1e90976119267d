package service

import (
	"context"

	"github.com/12keith/spelling-bee-backend/internal/models"
	"github.com/12keith/spelling-bee-backend/internal/repo"
)

type WordService struct {
	Repo *repo.GormRepo
}

func (s *WordService) List(ctx context.Context) ([]models.Word, error) {
	return s.Repo.ListWords(ctx)
}
