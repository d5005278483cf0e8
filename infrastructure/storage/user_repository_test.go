package storage

import (
	"ext-data/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateUser(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	c := newTestContext(db)
	repo := NewUserRepository()
	repo.SetStorageContext(c)

	// When a user is created
	id, err := repo.CreateUser("test@example.com", "hash")
	req.NoError(err)
	req.NotEmpty(id)

	// Then it is visible in the same unit of work before the commit
	user, err := repo.GetUserByEmail("test@example.com")
	req.NoError(err)
	req.Equal(id, user.ID)
	req.Equal("hash", user.PasswordHash)
	req.Equal([]string{"user"}, user.Roles)

	// And a second creation with the same email is rejected
	_, err = repo.CreateUser("test@example.com", "other")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
	req.Equal(1, c.PendingChanges())
}

func TestUserRepository_Duplicate_Across_Units_Of_Work(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	// Given a user committed by a first context
	first := newTestContext(db)
	repo := NewUserRepository()
	repo.SetStorageContext(first)
	_, err := repo.CreateUser("dup@example.com", "hash")
	req.NoError(err)
	_, err = first.SaveChanges()
	req.NoError(err)

	// When another context tries to create it again
	second := newTestContext(db)
	other := NewUserRepository()
	other.SetStorageContext(second)
	_, err = other.CreateUser("dup@example.com", "hash")

	// Then it is refused
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
	req.False(second.HasChanges())
}

func TestUserRepository_GetUserByEmail_Not_Found(t *testing.T) {
	req := require.New(t)
	db, cleanup := SetupTestDB(t)
	defer cleanup()
	repo := NewUserRepository()
	repo.SetStorageContext(newTestContext(db))

	_, err := repo.GetUserByEmail("unknown@example.com")

	req.ErrorIs(err, errors.ErrUserNotFound)
}
