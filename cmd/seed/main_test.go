package main

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"courseapi/internal/auth"
	"courseapi/internal/db"
	"courseapi/internal/repository"
)

func TestSeed(t *testing.T) {
	gormDB, err := db.NewSQLite("file::memory:", nil)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	var data SeedData
	require.NoError(t, json.Unmarshal(defaultSeed, &data))

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	users := repository.NewUserRepository(gormDB)
	courses := repository.NewCourseRepository(gormDB)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	ctx := context.Background()

	counts, err := seed(ctx, logger, users, courses, hasher, data)
	require.NoError(t, err)
	assert.Equal(t, seedCounts{users: 2, courses: 3}, counts)

	joe, err := users.FindUserByEmail(ctx, "joe@smith.com")
	require.NoError(t, err)
	assert.NoError(t, hasher.Verify(joe.Password, "joepassword"))

	// a second run does not duplicate users
	counts, err = seed(ctx, logger, users, courses, hasher, SeedData{Users: data.Users})
	require.NoError(t, err)
	assert.Equal(t, 0, counts.users)
}
