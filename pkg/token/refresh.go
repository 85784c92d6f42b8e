package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
)

const refreshTokenBytes = 32

// RefreshToken - значение уходит клиенту в cookie, в БД хранится только хэш
type RefreshToken struct {
	Value string
	Hash  string
}

func NewRefreshToken() (RefreshToken, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return RefreshToken{}, err
	}

	value := base64.RawURLEncoding.EncodeToString(b)
	return RefreshToken{Value: value, Hash: HashRefreshToken(value)}, nil
}

func HashRefreshToken(value string) string {
	h := sha256.Sum256([]byte(value))
	return hex.EncodeToString(h[:])
}

// VerifyRefreshToken сравнение за постоянное время
func VerifyRefreshToken(value, hash string) bool {
	if value == "" || hash == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(HashRefreshToken(value)), []byte(hash)) == 1
}
