package service

import (
	"context"
	"strings"

	"go-taskhub/internal/domain"
	"go-taskhub/internal/repo"
	"go-taskhub/pkg/optional"
	"go-taskhub/pkg/utils"
)

type UserService struct {
	users *repo.UserRepo
}

func NewUserService(users *repo.UserRepo) *UserService {
	return &UserService{users: users}
}

type CreateUserInput struct {
	Email string                 `json:"email"`
	Name  optional.Field[string] `json:"name"`
}

// List returns every user, newest first, annotated with task counts.
func (s *UserService) List(ctx context.Context) ([]domain.UserView, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, Internal("Failed to fetch users", err)
	}
	counts, err := s.users.TaskCounts(ctx)
	if err != nil {
		return nil, Internal("Failed to fetch users", err)
	}

	out := make([]domain.UserView, 0, len(users))
	for i := range users {
		out = append(out, userView(&users[i], counts[users[i].ID]))
	}
	return out, nil
}

// Create validates and normalizes the input (email lowercased and trimmed,
// name trimmed or null) and stores the user. A duplicate email is a
// conflict.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*domain.UserView, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	var name *string
	if v, ok := in.Name.Value(); ok {
		if t := strings.TrimSpace(v); t != "" {
			name = &t
		}
	}

	u := &domain.User{
		ID:    utils.NewID(),
		Email: email,
		Name:  name,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fromStore(err, storeMsgs{
			conflict: "Email already exists",
			internal: "Failed to create user",
		})
	}

	view := userView(u, 0)
	return &view, nil
}

// Delete removes a user and, through the store's cascade constraint, every
// task the user owns.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return Invalid("Invalid user ID")
	}
	n, err := s.users.Delete(ctx, id)
	if err != nil {
		return Internal("Failed to delete user", err)
	}
	if n == 0 {
		return NotFound("User not found")
	}
	return nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", Invalid("Valid email is required")
	}
	if !emailRe.MatchString(email) {
		return "", Invalid("Invalid email format")
	}
	return strings.ToLower(email), nil
}

func userView(u *domain.User, taskCount int64) domain.UserView {
	return domain.UserView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		TaskCount: taskCount,
	}
}
