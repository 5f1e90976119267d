package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/12keith/spelling-bee-backend/internal/models"
	"github.com/12keith/spelling-bee-backend/internal/repo"
)

func TestInitDB_SeedsOnceAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database_folder", "database.db")
	ctx := context.Background()

	db, err := InitDB(ctx, path)
	require.NoError(t, err)

	r := &repo.GormRepo{DB: db}
	words, err := r.ListWords(ctx)
	require.NoError(t, err)
	require.Len(t, words, len(SeedWords))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// restart against the same file
	db2, err := InitDB(ctx, path)
	require.NoError(t, err)

	r2 := &repo.GormRepo{DB: db2}
	words2, err := r2.ListWords(ctx)
	require.NoError(t, err)
	require.Len(t, words2, len(SeedWords))
}

func TestInitDB_MigratesUserUniqueness(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.db")
	ctx := context.Background()

	db, err := InitDB(ctx, path)
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.User{Username: "test_user", PasswordHash: "h1"}).Error)
	require.Error(t, db.Create(&models.User{Username: "test_user", PasswordHash: "h2"}).Error)
}
