package services

import (
	goerrors "errors"
	"ext-data/auth"
	"ext-data/errors"
	"ext-data/repositories"
	"ext-data/storage"
	"fmt"
	"log/slog"
)

type IAccountService interface {
	Register(email, password string) (string, error)
	Authenticate(email, password string) (string, error)
}

// AccountService stages accounts into the unit of work it is given.
// Committing is left to the owner of that unit of work.
type AccountService struct {
	storage *storage.Storage
	issuer  *auth.TokenIssuer
	policy  auth.PasswordPolicy
	log     *slog.Logger
}

func NewAccountService(storage *storage.Storage, issuer *auth.TokenIssuer, policy auth.PasswordPolicy, log *slog.Logger) IAccountService {
	return &AccountService{storage: storage, issuer: issuer, policy: policy, log: log}
}

// Register validates and hashes the password, then stages the user and returns its ID.
// On failure nothing it staged remains; other pending changes are left alone.
func (s *AccountService) Register(email, password string) (string, error) {
	if err := auth.ValidateEmail(email); err != nil {
		return "", err
	}
	if err := s.policy.Check(password); err != nil {
		return "", err
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	users, err := s.users()
	if err != nil {
		return "", err
	}

	rollback := savepoint(s.storage)
	userID, err := users.CreateUser(email, hashedPassword)
	if err != nil {
		rollback()
		return "", err
	}
	s.log.Debug("Account staged", "user", userID)
	return userID, nil
}

// Authenticate checks the credentials against staged and committed users
// and returns a signed access token.
func (s *AccountService) Authenticate(email, password string) (string, error) {
	users, err := s.users()
	if err != nil {
		return "", err
	}

	user, err := users.GetUserByEmail(email)
	if goerrors.Is(err, errors.ErrUserNotFound) {
		return "", errors.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", fmt.Errorf("token signing failed: %w", err)
	}
	return token, nil
}

func (s *AccountService) users() (repositories.IUserRepository, error) {
	users, ok := storage.GetRepository[repositories.IUserRepository](s.storage)
	if !ok {
		return nil, fmt.Errorf("%w: no provider for the user repository", errors.ErrConfiguration)
	}
	return users, nil
}
