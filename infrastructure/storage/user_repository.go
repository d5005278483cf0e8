package storage

import (
	goerrors "errors"
	"ext-data/errors"
	"ext-data/repositories"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type UserRepository struct {
	Bound
}

var _ repositories.IUserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// CreateUser stages a new user keyed by email and returns its generated ID.
// An email already staged or committed is rejected.
func (u *UserRepository) CreateUser(email, hashedPassword string) (string, error) {
	c, err := u.badgerContext()
	if err != nil {
		return "", err
	}

	key := userKey(email)
	_, err = c.Get(key)
	switch {
	case err == nil:
		return "", fmt.Errorf("%w: %s", errors.ErrUserAlreadyExists, email)
	case !goerrors.Is(err, badger.ErrKeyNotFound):
		return "", err
	}

	newID := uuid.NewString()
	data, err := encode(map[string]any{
		"id":            newID,
		"email":         email,
		"password_hash": hashedPassword,
		"roles":         lo.ToAnySlice([]string{"user"}),
		"created_at":    formatTime(time.Now()),
	})
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}
	c.Set(key, data)
	return newID, nil
}

// GetUserByEmail sees users staged in the current unit of work as well as committed ones.
func (u *UserRepository) GetUserByEmail(email string) (repositories.User, error) {
	c, err := u.badgerContext()
	if err != nil {
		return repositories.User{}, err
	}

	data, err := c.Get(userKey(email))
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return repositories.User{}, fmt.Errorf("%w: %s", errors.ErrUserNotFound, email)
	}
	if err != nil {
		return repositories.User{}, err
	}

	record, err := decode(data)
	if err != nil {
		return repositories.User{}, err
	}
	createdAt, err := timeField(record, "created_at")
	if err != nil {
		return repositories.User{}, err
	}
	return repositories.User{
		ID:           stringField(record, "id"),
		Email:        stringField(record, "email"),
		PasswordHash: stringField(record, "password_hash"),
		Roles:        stringsField(record, "roles"),
		CreatedAt:    createdAt,
	}, nil
}

func userKey(email string) []byte {
	return []byte("user:" + email)
}
