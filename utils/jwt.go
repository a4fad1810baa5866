package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session tokens are long-lived; the mobile client has no refresh flow.
const sessionTTL = 72 * time.Hour

// GenerateJWT issues the bearer token the auth middleware checks. The email
// claim is the user's identity everywhere downstream.
func GenerateJWT(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
