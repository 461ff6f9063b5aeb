package utils

import "golang.org/x/crypto/bcrypt"

// HashPIN hashes a scorer PIN. An empty PIN hashes to "".
func HashPIN(pin string) (string, error) {
	if pin == "" {
		return "", nil
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPIN(hash, pin string) bool {
	if hash == "" || pin == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
	return err == nil
}
