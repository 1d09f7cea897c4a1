package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"courseapi/internal/auth"
	apperrors "courseapi/internal/errors"
	"courseapi/internal/model"
	"courseapi/internal/repository"
)

func TestAuthService_Authenticate(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	hashed, err := hasher.Hash("joepassword")
	require.NoError(t, err)
	joe := &model.User{ID: 1, FirstName: "Joe", EmailAddress: "joe@smith.com", Password: hashed}

	tests := []struct {
		name       string
		creds      auth.Credentials
		setupMock  func(*MockUserRepository)
		wantUser   *model.User
		wantKind   apperrors.Kind
		wantReason string
	}{
		{
			name:  "valid credentials",
			creds: auth.Credentials{Name: "joe@smith.com", Pass: "joepassword"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindUserByEmail", mock.Anything, "joe@smith.com").Return(joe, nil)
			},
			wantUser: joe,
		},
		{
			name:  "unknown user",
			creds: auth.Credentials{Name: "sally@jones.com", Pass: "x"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindUserByEmail", mock.Anything, "sally@jones.com").Return(nil, repository.ErrNotFound)
			},
			wantKind:   apperrors.KindUnauthenticated,
			wantReason: "User sally@jones.com not found.",
		},
		{
			name:  "wrong password",
			creds: auth.Credentials{Name: "joe@smith.com", Pass: "nope"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindUserByEmail", mock.Anything, "joe@smith.com").Return(joe, nil)
			},
			wantKind:   apperrors.KindUnauthenticated,
			wantReason: ReasonIncorrectPassword,
		},
		{
			name:  "store failure is not an authentication failure",
			creds: auth.Credentials{Name: "joe@smith.com", Pass: "joepassword"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindUserByEmail", mock.Anything, "joe@smith.com").Return(nil, errors.New("connection refused"))
			},
			wantKind: apperrors.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			svc := NewAuthService(repo, hasher)
			user, err := svc.Authenticate(context.Background(), tt.creds)

			if tt.wantUser != nil {
				assert.NoError(t, err)
				assert.Same(t, tt.wantUser, user)
			} else {
				require.Error(t, err)
				assert.Nil(t, user)
				assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
				if tt.wantReason != "" {
					assert.Equal(t, tt.wantReason, err.Error())
				}
			}
			repo.AssertExpectations(t)
		})
	}
}
