package auth

import "golang.org/x/crypto/bcrypt"

const saltRounds = 10

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), saltRounds)
	return string(hash), err
}

// ComparePasswords reports whether password matches the stored bcrypt hash.
func ComparePasswords(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
