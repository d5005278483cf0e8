package internal

import (
	"ext-data/auth"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	BadgerFilepath            string        `env:"BADGER_FILEPATH" validate:"required_without=BadgerInMemory"`
	BadgerInMemory            bool          `env:"BADGER_IN_MEMORY,default=false"`
	LogLevel                  string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	LimitMessages             *int          `env:"LIMIT_MESSAGES" validate:"omitempty,gt=0"`
	CommitTimeout             time.Duration `env:"COMMIT_TIMEOUT,default=5s" validate:"gt=0"`
	AcceptAllChangesOnSuccess bool          `env:"ACCEPT_ALL_CHANGES_ON_SUCCESS,default=true"`

	AuthTokenSecret   string        `env:"AUTH_TOKEN_SECRET,required=true" validate:"min=32"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h" validate:"gt=0"`

	PasswordMinLength     int  `env:"PASSWORD_MIN_LENGTH,default=12" validate:"gte=8"`
	PasswordMaxLength     int  `env:"PASSWORD_MAX_LENGTH,default=72" validate:"gtefield=PasswordMinLength,lte=1024"`
	PasswordRequireUpper  bool `env:"PASSWORD_REQUIRE_UPPER,default=true"`
	PasswordRequireLower  bool `env:"PASSWORD_REQUIRE_LOWER,default=true"`
	PasswordRequireDigit  bool `env:"PASSWORD_REQUIRE_DIGIT,default=true"`
	PasswordRequireSymbol bool `env:"PASSWORD_REQUIRE_SYMBOL,default=true"`
}

// Validate checks the combinations go-env cannot express.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c Config) PasswordPolicy() auth.PasswordPolicy {
	return auth.PasswordPolicy{
		MinLength:     c.PasswordMinLength,
		MaxLength:     c.PasswordMaxLength,
		RequireUpper:  c.PasswordRequireUpper,
		RequireLower:  c.PasswordRequireLower,
		RequireDigit:  c.PasswordRequireDigit,
		RequireSymbol: c.PasswordRequireSymbol,
	}
}
