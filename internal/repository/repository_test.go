package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"courseapi/internal/db"
	apperrors "courseapi/internal/errors"
	"courseapi/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := db.NewSQLite("file::memory:", nil)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gormDB
}

func createUser(t *testing.T, repo UserRepository, email string) *model.User {
	t.Helper()
	user := &model.User{FirstName: "Joe", LastName: "Smith", EmailAddress: email, Password: "hash"}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func strPtr(s string) *string { return &s }

func TestUserRepository_FindUserByEmail_CaseInsensitive(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	created := createUser(t, repo, "Foo@Bar.com")

	assert.Equal(t, "foo@bar.com", created.EmailAddress)

	found, err := repo.FindUserByEmail(context.Background(), "FOO@bar.COM")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_CreateUser_Duplicate(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createUser(t, repo, "joe@smith.com")

	err := repo.CreateUser(context.Background(), &model.User{EmailAddress: "JOE@smith.com", Password: "hash"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConstraint, apperrors.KindOf(err))
	assert.Equal(t, "emailAddress must be unique", err.Error())
}

func TestCourseRepository_CRUD(t *testing.T) {
	gormDB := newTestDB(t)
	users := NewUserRepository(gormDB)
	courses := NewCourseRepository(gormDB)
	ctx := context.Background()

	owner := createUser(t, users, "owner@example.com")
	course := &model.Course{
		Title:         "Build a Basic Bookcase",
		Description:   "High-end furniture projects are great to dream about.",
		EstimatedTime: strPtr("12 hours"),
		UserID:        owner.ID,
	}
	require.NoError(t, courses.CreateCourse(ctx, course))
	require.NotZero(t, course.ID)

	found, err := courses.FindCourseByID(ctx, course.ID)
	require.NoError(t, err)
	require.NotNil(t, found.User)
	assert.Equal(t, owner.ID, found.User.ID)
	assert.Equal(t, "owner@example.com", found.User.EmailAddress)
	assert.Nil(t, found.MaterialsNeeded)

	found.Title = "Learn How to Program"
	found.MaterialsNeeded = strPtr("* Notebook computer")
	require.NoError(t, courses.UpdateCourse(ctx, found))

	updated, err := courses.FindCourseByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Learn How to Program", updated.Title)
	require.NotNil(t, updated.MaterialsNeeded)
	assert.Equal(t, "* Notebook computer", *updated.MaterialsNeeded)
	assert.Equal(t, owner.ID, updated.UserID)

	list, err := courses.ListCoursesWithOwner(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].User)
	assert.Equal(t, owner.ID, list[0].User.ID)

	require.NoError(t, courses.DeleteCourse(ctx, course.ID))
	assert.ErrorIs(t, courses.DeleteCourse(ctx, course.ID), ErrNotFound)

	_, err = courses.FindCourseByID(ctx, course.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCourseRepository_CreateCourse_RequiresExistingOwner(t *testing.T) {
	courses := NewCourseRepository(newTestDB(t))

	err := courses.CreateCourse(context.Background(), &model.Course{Title: "t", Description: "d", UserID: 999})
	assert.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.False(t, IsUniqueViolation(gorm.ErrRecordNotFound))
}
