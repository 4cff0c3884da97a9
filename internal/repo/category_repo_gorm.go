package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-taskhub/internal/domain"
)

type CategoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Create(ctx context.Context, cat *domain.Category) error {
	return r.db.WithContext(ctx).Create(cat).Error
}

// FindByID returns (nil, nil) when no category matches.
func (r *CategoryRepo) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	var cat domain.Category
	err := r.db.WithContext(ctx).First(&cat, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cats).Error
	return cats, err
}

// TaskCounts returns the number of referencing tasks per category id.
func (r *CategoryRepo) TaskCounts(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		CategoryID string
		N          int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Select("category_id, COUNT(1) AS n").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.N
	}
	return counts, nil
}

// Delete removes the category; referencing tasks keep existing with their
// category_id set to null by the constraint. Returns the number of deleted
// categories.
func (r *CategoryRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Category{})
	return res.RowsAffected, res.Error
}
