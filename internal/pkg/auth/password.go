package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is used when the configured cost is missing or outside the
// range bcrypt accepts.
const DefaultHashCost = 12

// PasswordHasher hashes passwords with a configured bcrypt cost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher, falling back to DefaultHashCost when
// the given cost is outside bcrypt's supported range.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash hashes a raw password
func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a raw password against a stored hash. The cost is
// encoded in the hash, so verification needs no configuration.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
