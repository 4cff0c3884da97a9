package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-taskhub/internal/domain"
)

type TaskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) Create(ctx context.Context, t *domain.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindByID loads a task with its owner and category. Returns (nil, nil)
// when no task matches.
func (r *TaskRepo) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List applies the filters with AND and orders the result: incomplete tasks
// first, then by urgency, newest first within the same urgency.
func (r *TaskRepo) List(ctx context.Context, f domain.TaskFilters) ([]domain.Task, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category")
	if f.Completed != nil {
		q = q.Where("completed = ?", *f.Completed)
	}
	if f.CategoryID != "" {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}

	var tasks []domain.Task
	err := q.
		Order("completed ASC").
		Order(domain.PriorityRankExpr + " DESC").
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

// Updates applies a partial patch; map values may be nil to clear nullable
// columns. updated_at is maintained by gorm.
func (r *TaskRepo) Updates(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete returns the number of deleted tasks.
func (r *TaskRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Task{})
	return res.RowsAffected, res.Error
}
