package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vkhomich/airport-api/internal/domain"
	"github.com/vkhomich/airport-api/internal/repository"
)

type fakeAuthUserRepository struct {
	users map[string]domain.User
}

func (f *fakeAuthUserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if _, exists := f.users[user.Email]; exists {
		return domain.User{}, repository.ErrUserEmailExists
	}

	user.ID = uint(len(f.users) + 1)
	f.users[user.Email] = user

	return user, nil
}

func (f *fakeAuthUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("hashes the password and defaults the role", func(t *testing.T) {
		repo := &fakeAuthUserRepository{users: map[string]domain.User{}}
		svc := NewAuthService(repo)

		user, err := svc.Signup(context.Background(), domain.User{
			Email:    "alice@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.NotEqual(t, "password123", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		repo := &fakeAuthUserRepository{users: map[string]domain.User{}}
		svc := NewAuthService(repo)

		_, err := svc.Signup(context.Background(), domain.User{Email: "alice@example.com", Password: "password123"})
		require.NoError(t, err)

		_, err = svc.Signup(context.Background(), domain.User{Email: "alice@example.com", Password: "password456"})
		assert.ErrorIs(t, err, ErrUserEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	repo := &fakeAuthUserRepository{users: map[string]domain.User{}}
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	t.Run("returns the user for valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "alice@example.com", "password123")

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "alice@example.com", "wrong")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "password123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
