package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-taskhub/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// FindByID returns (nil, nil) when no user matches.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

// TaskCounts returns the number of owned tasks per user id. Users without
// tasks are absent from the map.
func (r *UserRepo) TaskCounts(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		UserID string
		N      int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Select("user_id, COUNT(1) AS n").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.UserID] = row.N
	}
	return counts, nil
}

// Delete removes the user; owned tasks go with it via the cascade
// constraint. Returns the number of deleted users.
func (r *UserRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.User{})
	return res.RowsAffected, res.Error
}
