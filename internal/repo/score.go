package repo

import (
	"context"

	"github.com/12keith/spelling-bee-backend/internal/models"
)

func (r *GormRepo) AppendScore(ctx context.Context, username string, score int) (*models.Score, error) {
	row := models.Score{
		Username: username,
		Score:    score,
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListScores returns every score, highest first. Equal scores keep
// insertion order (lowest id first).
func (r *GormRepo) ListScores(ctx context.Context) ([]models.Score, error) {
	var items []models.Score
	if err := r.DB.WithContext(ctx).Model(&models.Score{}).Order("score DESC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
