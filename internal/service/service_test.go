package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-taskhub/internal/core/database"
	"go-taskhub/internal/domain"
	"go-taskhub/internal/repo"
	"go-taskhub/pkg/utils"
)

// setupTestDB opens a private in-memory database with foreign key
// enforcement on; cascade and set-null behavior depend on it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:test-%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          dsn,
		MaxOpenConns: 4,
		MaxIdleConns: 4,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Task{}))
	return db
}

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repo.NewUserRepo(db))
}

func newCategoryService(db *gorm.DB) *CategoryService {
	return NewCategoryService(repo.NewCategoryRepo(db))
}

func newTaskService(db *gorm.DB) *TaskService {
	return NewTaskService(repo.NewTaskRepo(db))
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	name := "Test User"
	u := &domain.User{ID: utils.NewID(), Email: email, Name: &name}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *domain.Category {
	t.Helper()
	c := &domain.Category{ID: utils.NewID(), Name: name, Color: domain.DefaultColor}
	require.NoError(t, db.Create(c).Error)
	return c
}

func createTestTask(t *testing.T, db *gorm.DB, task domain.Task) *domain.Task {
	t.Helper()
	if task.ID == "" {
		task.ID = utils.NewID()
	}
	require.NoError(t, db.Create(&task).Error)
	return &task
}

// createTestTimestampedUser pins created_at so ordering assertions don't
// depend on wall-clock resolution.
func createTestTimestampedUser(t *testing.T, db *gorm.DB, email string, hourOffset int) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:        utils.NewID(),
		Email:     email,
		CreatedAt: at(t, time.Duration(hourOffset)*time.Hour),
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// requireKind asserts that err is a service error of the given kind.
func requireKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	var se *Error
	require.ErrorAs(t, err, &se)
	require.Equal(t, kind, se.Kind)
	return se
}

func at(t *testing.T, offset time.Duration) time.Time {
	t.Helper()
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(offset)
}
