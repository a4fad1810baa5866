package utils

import "math/rand"

// GenerateNumericCode returns an n-digit code, used for MFA logins and
// password resets where the user types the code by hand.
func GenerateNumericCode(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte('0' + rand.Intn(10))
	}
	return string(out)
}
