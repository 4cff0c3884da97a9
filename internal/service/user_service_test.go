package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-taskhub/internal/domain"
	"go-taskhub/pkg/optional"
)

func TestUserService_Create_NormalizesEmailAndName(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	u, err := svc.Create(context.Background(), CreateUserInput{
		Email: "  Demo@Example.COM ",
		Name:  optional.Of("  Demo User "),
	})
	require.NoError(t, err)

	assert.Equal(t, "demo@example.com", u.Email)
	require.NotNil(t, u.Name)
	assert.Equal(t, "Demo User", *u.Name)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, int64(0), u.TaskCount)
}

func TestUserService_Create_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	tests := []struct {
		name    string
		in      CreateUserInput
		wantMsg string
	}{
		{"missing email", CreateUserInput{}, "Valid email is required"},
		{"blank email", CreateUserInput{Email: "   "}, "Valid email is required"},
		{"no at sign", CreateUserInput{Email: "demo.example.com"}, "Invalid email format"},
		{"no domain dot", CreateUserInput{Email: "demo@example"}, "Invalid email format"},
		{"whitespace in local part", CreateUserInput{Email: "de mo@example.com"}, "Invalid email format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			se := requireKind(t, err, KindValidation)
			assert.Equal(t, tt.wantMsg, se.Msg)
		})
	}
}

func TestUserService_Create_NullAndEmptyNameStoredAsNull(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	u1, err := svc.Create(context.Background(), CreateUserInput{
		Email: "a@example.com",
		Name:  optional.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, u1.Name)

	u2, err := svc.Create(context.Background(), CreateUserInput{
		Email: "b@example.com",
		Name:  optional.Of("   "),
	})
	require.NoError(t, err)
	assert.Nil(t, u2.Name)
}

func TestUserService_Create_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	_, err := svc.Create(context.Background(), CreateUserInput{Email: "Demo@Example.com"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateUserInput{Email: "demo@example.com"})
	se := requireKind(t, err, KindConflict)
	assert.Equal(t, "Email already exists", se.Msg)
}

func TestUserService_List_NewestFirstWithTaskCounts(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	older := createTestTimestampedUser(t, db, "older@example.com", 0)
	newer := createTestTimestampedUser(t, db, "newer@example.com", 1)
	createTestTask(t, db, domain.Task{Title: "one", UserID: older.ID, Priority: domain.PriorityMedium})
	createTestTask(t, db, domain.Task{Title: "two", UserID: older.ID, Priority: domain.PriorityMedium})

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, newer.ID, users[0].ID)
	assert.Equal(t, int64(0), users[0].TaskCount)
	assert.Equal(t, older.ID, users[1].ID)
	assert.Equal(t, int64(2), users[1].TaskCount)
}

func TestUserService_Delete_CascadesToTasks(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	victim := createTestUser(t, db, "victim@example.com")
	other := createTestUser(t, db, "other@example.com")
	createTestTask(t, db, domain.Task{Title: "goes away", UserID: victim.ID, Priority: domain.PriorityLow})
	createTestTask(t, db, domain.Task{Title: "stays", UserID: other.ID, Priority: domain.PriorityLow})

	require.NoError(t, svc.Delete(context.Background(), victim.ID))

	var remaining []domain.Task
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].UserID)
}

func TestUserService_Delete_Errors(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	err := svc.Delete(context.Background(), "short")
	requireKind(t, err, KindValidation)

	err = svc.Delete(context.Background(), "00000000-0000-0000-0000-000000000000")
	se := requireKind(t, err, KindNotFound)
	assert.Equal(t, "User not found", se.Msg)
}
