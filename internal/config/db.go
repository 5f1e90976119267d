package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/12keith/spelling-bee-backend/internal/models"
	"github.com/12keith/spelling-bee-backend/internal/repo"
)

// SeedWords is the fixed starter set inserted on first boot.
var SeedWords = []models.Word{
	{Word: "apple", Difficulty: "easy"},
	{Word: "banana", Difficulty: "easy"},
	{Word: "cherry", Difficulty: "medium"},
}

func InitDB(ctx context.Context, path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&models.Word{}, &models.Score{}, &models.User{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r := repo.GormRepo{DB: db}
	if err := r.SeedWords(ctx, SeedWords); err != nil {
		return nil, fmt.Errorf("seed words: %w", err)
	}

	return db, nil
}
