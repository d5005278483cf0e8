package errors

import "fmt"

var (
	ErrConfiguration               = fmt.Errorf("invalid storage configuration")
	ErrCommitCancelled             = fmt.Errorf("commit cancelled")
	ErrRepositoryAlreadyRegistered = fmt.Errorf("repository already registered for capability")
	ErrNilRepositoryFactory        = fmt.Errorf("repository factory is nil")
	ErrStorageContextNotSet        = fmt.Errorf("repository is not bound to a storage context")
	ErrUnsupportedStorageContext   = fmt.Errorf("storage context is not backed by badger")

	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrInvalidEmail       = fmt.Errorf("invalid email address")
	ErrInvalidTimestamp   = fmt.Errorf("timestamp before the unix epoch")
	ErrTaskNotPending     = fmt.Errorf("task is no longer pending")
	ErrEmptyPath          = fmt.Errorf("file path is empty")
)
