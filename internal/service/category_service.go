package service

import (
	"context"
	"strings"

	"go-taskhub/internal/domain"
	"go-taskhub/internal/repo"
	"go-taskhub/pkg/optional"
	"go-taskhub/pkg/utils"
)

type CategoryService struct {
	categories *repo.CategoryRepo
}

func NewCategoryService(categories *repo.CategoryRepo) *CategoryService {
	return &CategoryService{categories: categories}
}

type CreateCategoryInput struct {
	Name        string                 `json:"name"`
	Description optional.Field[string] `json:"description"`
	Color       optional.Field[string] `json:"color"`
}

// List returns every category in name order with task counts.
func (s *CategoryService) List(ctx context.Context) ([]domain.CategoryView, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, Internal("Failed to fetch categories", err)
	}
	counts, err := s.categories.TaskCounts(ctx)
	if err != nil {
		return nil, Internal("Failed to fetch categories", err)
	}

	out := make([]domain.CategoryView, 0, len(cats))
	for i := range cats {
		out = append(out, categoryView(&cats[i], counts[cats[i].ID]))
	}
	return out, nil
}

// Create validates the input and stores the category. The color defaults
// when absent or empty; a duplicate name is a conflict.
func (s *CategoryService) Create(ctx context.Context, in CreateCategoryInput) (*domain.CategoryView, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, Invalid("Valid name is required")
	}

	var description *string
	if v, ok := in.Description.Value(); ok {
		if t := strings.TrimSpace(v); t != "" {
			description = &t
		}
	}

	color := domain.DefaultColor
	if v, ok := in.Color.Value(); ok && v != "" {
		if !colorRe.MatchString(v) {
			return nil, Invalid("Invalid color format. Use hex format like #3B82F6")
		}
		color = v
	}

	cat := &domain.Category{
		ID:          utils.NewID(),
		Name:        name,
		Description: description,
		Color:       color,
	}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, fromStore(err, storeMsgs{
			conflict: "Category name already exists",
			internal: "Failed to create category",
		})
	}

	view := categoryView(cat, 0)
	return &view, nil
}

// Delete removes a category; tasks that referenced it survive with their
// category cleared by the store's set-null constraint.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return Invalid("Invalid category ID")
	}
	n, err := s.categories.Delete(ctx, id)
	if err != nil {
		return Internal("Failed to delete category", err)
	}
	if n == 0 {
		return NotFound("Category not found")
	}
	return nil
}

func categoryView(c *domain.Category, taskCount int64) domain.CategoryView {
	return domain.CategoryView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		TaskCount:   taskCount,
	}
}
