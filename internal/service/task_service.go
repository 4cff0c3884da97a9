package service

import (
	"context"
	"strings"
	"time"

	"go-taskhub/internal/domain"
	"go-taskhub/internal/repo"
	"go-taskhub/pkg/optional"
	"go-taskhub/pkg/utils"
)

type TaskService struct {
	tasks *repo.TaskRepo
}

func NewTaskService(tasks *repo.TaskRepo) *TaskService {
	return &TaskService{tasks: tasks}
}

type CreateTaskInput struct {
	Title       string                 `json:"title"`
	Description optional.Field[string] `json:"description"`
	Priority    optional.Field[string] `json:"priority"`
	UserID      string                 `json:"userId"`
	CategoryID  optional.Field[string] `json:"categoryId"`
	DueDate     optional.Field[string] `json:"dueDate"`
}

// UpdateTaskInput is a partial patch: absent fields keep their value,
// explicit null clears description, dueDate and categoryId. Title,
// completed and priority cannot be nulled.
type UpdateTaskInput struct {
	Title       optional.Field[string] `json:"title"`
	Description optional.Field[string] `json:"description"`
	Completed   optional.Field[bool]   `json:"completed"`
	Priority    optional.Field[string] `json:"priority"`
	DueDate     optional.Field[string] `json:"dueDate"`
	CategoryID  optional.Field[string] `json:"categoryId"`
}

func (s *TaskService) List(ctx context.Context, f domain.TaskFilters) ([]domain.TaskView, error) {
	tasks, err := s.tasks.List(ctx, f)
	if err != nil {
		return nil, Internal("Failed to fetch tasks", err)
	}
	out := make([]domain.TaskView, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskView(&tasks[i]))
	}
	return out, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*domain.TaskView, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("Failed to fetch task", err)
	}
	if t == nil {
		return nil, NotFound("Task not found")
	}
	view := taskView(t)
	return &view, nil
}

// Create validates the input and stores the task. The owner must exist and
// the category, when given, must exist; both are enforced by the store's
// foreign keys and surface as invalid-reference.
func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (*domain.TaskView, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, Invalid("Valid title is required")
	}
	if in.UserID == "" {
		return nil, Invalid("Valid userId is required")
	}

	priority := domain.PriorityMedium
	if v, ok := in.Priority.Value(); ok && v != "" {
		if !domain.Priority(v).Valid() {
			return nil, Invalid("Invalid priority value")
		}
		priority = domain.Priority(v)
	}

	var description *string
	if v, ok := in.Description.Value(); ok {
		if t := strings.TrimSpace(v); t != "" {
			description = &t
		}
	}

	var categoryID *string
	if v, ok := in.CategoryID.Value(); ok && v != "" {
		categoryID = &v
	}

	var dueDate *time.Time
	if v, ok := in.DueDate.Value(); ok && v != "" {
		t, err := parseDueDate(v)
		if err != nil {
			return nil, Invalid("Invalid due date format")
		}
		dueDate = &t
	}

	t := &domain.Task{
		ID:          utils.NewID(),
		Title:       title,
		Description: description,
		Priority:    priority,
		UserID:      in.UserID,
		CategoryID:  categoryID,
		DueDate:     dueDate,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, fromStore(err, storeMsgs{
			reference: "Invalid user or category reference",
			internal:  "Failed to create task",
		})
	}
	return s.reload(ctx, t.ID, "Failed to create task")
}

// Update applies a partial patch. Only supplied fields are validated and
// written; the rest keep their stored value.
func (s *TaskService) Update(ctx context.Context, id string, in UpdateTaskInput) (*domain.TaskView, error) {
	if !validID(id) {
		return nil, Invalid("Invalid task ID")
	}

	updates := map[string]any{}

	if in.Title.IsSet() {
		v, ok := in.Title.Value()
		title := strings.TrimSpace(v)
		if !ok || title == "" {
			return nil, Invalid("Valid title is required")
		}
		updates["title"] = title
	}
	if in.Description.IsSet() {
		if v, ok := in.Description.Value(); ok {
			if t := strings.TrimSpace(v); t != "" {
				updates["description"] = t
			} else {
				updates["description"] = nil
			}
		} else {
			updates["description"] = nil
		}
	}
	if in.Completed.IsSet() {
		v, ok := in.Completed.Value()
		if !ok {
			return nil, Invalid("Completed must be a boolean")
		}
		updates["completed"] = v
	}
	if in.Priority.IsSet() {
		v, ok := in.Priority.Value()
		if !ok || !domain.Priority(v).Valid() {
			return nil, Invalid("Invalid priority value")
		}
		updates["priority"] = v
	}
	if in.DueDate.IsSet() {
		if v, ok := in.DueDate.Value(); ok {
			t, err := parseDueDate(v)
			if err != nil {
				return nil, Invalid("Invalid due date format")
			}
			updates["due_date"] = t
		} else {
			updates["due_date"] = nil
		}
	}
	if in.CategoryID.IsSet() {
		if v, ok := in.CategoryID.Value(); ok {
			updates["category_id"] = v
		} else {
			updates["category_id"] = nil
		}
	}

	existing, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, Internal("Failed to update task", err)
	}
	if existing == nil {
		return nil, NotFound("Task not found")
	}

	if len(updates) > 0 {
		if err := s.tasks.Updates(ctx, id, updates); err != nil {
			return nil, fromStore(err, storeMsgs{
				reference: "Invalid category reference",
				internal:  "Failed to update task",
			})
		}
	}
	return s.reload(ctx, id, "Failed to update task")
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return Invalid("Invalid task ID")
	}
	n, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return Internal("Failed to delete task", err)
	}
	if n == 0 {
		return NotFound("Task not found")
	}
	return nil
}

func (s *TaskService) reload(ctx context.Context, id, failMsg string) (*domain.TaskView, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil || t == nil {
		return nil, Internal(failMsg, err)
	}
	view := taskView(t)
	return &view, nil
}

func taskView(t *domain.Task) domain.TaskView {
	view := domain.TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		User: domain.UserSummary{
			ID:    t.User.ID,
			Name:  t.User.Name,
			Email: t.User.Email,
		},
	}
	if t.Category != nil {
		view.Category = &domain.CategorySummary{
			ID:    t.Category.ID,
			Name:  t.Category.Name,
			Color: t.Category.Color,
		}
	}
	return view
}
