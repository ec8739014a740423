package helpers

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor the product has always used for stored
// password hashes.
const bcryptCost = 12

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func ComparePassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// IsValidPhone accepts the 10-digit phone format the registration form uses.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
