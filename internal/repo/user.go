package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/12keith/spelling-bee-backend/internal/models"
)

var ErrUserAlreadyExists = errors.New("user already exists")

func (r *GormRepo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user. The existence check is only a fast path:
// the UNIQUE constraint on username is what actually decides a race between
// two concurrent inserts.
func (r *GormRepo) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	var existing models.User
	err := r.DB.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := r.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	return &user, nil
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
