package service

import (
	"crypto/rand"
	"math/big"
)

const (
	joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	joinCodeLength   = 6
	maxCodeAttempts  = 5
)

// CodeGenerator produces candidate join codes.
type CodeGenerator func() (string, error)

// GenerateJoinCode returns six uppercase alphanumeric characters drawn from crypto/rand.
func GenerateJoinCode() (string, error) {
	base := big.NewInt(int64(len(joinCodeAlphabet)))
	code := make([]byte, joinCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", err
		}
		code[i] = joinCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
