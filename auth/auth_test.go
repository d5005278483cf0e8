package auth

import (
	"ext-data/errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "CorrectHorse9!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("WrongHorse9!", hash)
	req.NoError(err)
	req.False(match)
}

func TestComparePassword_Rejects_Malformed_Hash(t *testing.T) {
	req := require.New(t)

	_, err := ComparePassword("whatever", "not-a-hash")
	req.Error(err)

	_, err = ComparePassword("whatever", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA")
	req.Error(err)

	_, err = ComparePassword("whatever", "$argon2id$v=19$garbage$c2FsdA$aGFzaA")
	req.Error(err)
}

func TestPasswordPolicy_Check(t *testing.T) {
	policy := DefaultPasswordPolicy()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid password", "ComplexPass123!", false},
		{"Too short", "Short1!", true},
		{"Missing digit", "NoDigitPass!", true},
		{"Missing symbol", "NoSpecialChar123", true},
		{"Missing uppercase", "nouppercase123!", true},
		{"Too long", strings.Repeat("Aa1!", 19), true},
		{"Length counted in characters", "Pässwörd12!é", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Check(tt.password)
			if tt.wantErr {
				require.ErrorIs(t, err, errors.ErrInvalidPassword)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPasswordPolicy_Relaxed_Rules(t *testing.T) {
	req := require.New(t)

	// Given a policy that only asks for length
	policy := PasswordPolicy{MinLength: 8, MaxLength: 64}
	req.NoError(policy.Validate())

	// Then character classes are not enforced
	req.NoError(policy.Check("alllowercase"))
	req.ErrorIs(policy.Check("short"), errors.ErrInvalidPassword)
}

func TestPasswordPolicy_Validate(t *testing.T) {
	req := require.New(t)

	req.NoError(DefaultPasswordPolicy().Validate())
	req.Error(PasswordPolicy{MinLength: 4, MaxLength: 64}.Validate())
	req.Error(PasswordPolicy{MinLength: 16, MaxLength: 12}.Validate())
}

func TestValidateEmail(t *testing.T) {
	req := require.New(t)

	req.NoError(ValidateEmail("test@example.com"))
	req.ErrorIs(ValidateEmail("notanemail"), errors.ErrInvalidEmail)
	req.ErrorIs(ValidateEmail(""), errors.ErrInvalidEmail)
}
