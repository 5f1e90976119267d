package repo

import (
	"context"

	"github.com/12keith/spelling-bee-backend/internal/models"
)

func (r *GormRepo) ListWords(ctx context.Context) ([]models.Word, error) {
	var items []models.Word
	if err := r.DB.WithContext(ctx).Model(&models.Word{}).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SeedWords inserts any word not already present, so restarting against an
// existing database does not duplicate rows.
func (r *GormRepo) SeedWords(ctx context.Context, words []models.Word) error {
	for _, w := range words {
		seed := w
		tx := r.DB.WithContext(ctx).Where("word = ?", seed.Word).FirstOrCreate(&seed)
		if tx.Error != nil {
			return tx.Error
		}
	}
	return nil
}
