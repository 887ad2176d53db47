// Package password provides password hashing utilities for the auth module.
package password

import "golang.org/x/crypto/bcrypt"

const hashCost = 12

// Hash produces a bcrypt hash of the given plaintext password.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether the plaintext password matches the stored hash.
func Compare(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
