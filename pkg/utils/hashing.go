package utils

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const passwordHashCost = 10

// MaxPasswordBytes is bcrypt's input limit.
const MaxPasswordBytes = 72

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password must be at most %d bytes", ErrValidation, MaxPasswordBytes)
	}
	return string(bytes), err
}

// ComparePasswords is constant time; the salt lives inside the bcrypt hash.
func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// CompareAgainstDummy spends one comparison at the real cost so a missing
// account takes as long to reject as a wrong password.
func CompareAgainstDummy(plainPassword string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("petsoft-no-such-account"), passwordHashCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plainPassword))
}
