package password

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Stored credential format: "<salt>$<digest>", digest = sha256(password + salt),
// both hex. The salt is regenerated on every Hash call, so hashing the same
// password twice yields different stored values.

const saltBytes = 16

// Hash хэширует пароль со случайной солью
func Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	saltHex := hex.EncodeToString(salt)
	digest := sha256.Sum256([]byte(password + saltHex))
	return saltHex + "$" + hex.EncodeToString(digest[:]), nil
}

// Verify проверяет пароль против сохранённого хэша.
// Malformed stored values fail closed: anything without exactly one "$"
// separator is treated as a non-match, never an error. The comparison is a
// plain string equality, not constant-time.
func Verify(password, stored string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 2 {
		return false
	}
	digest := sha256.Sum256([]byte(password + parts[0]))
	return hex.EncodeToString(digest[:]) == parts[1]
}
