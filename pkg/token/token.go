// Package token implements the session tokens returned by register and login:
// an opaque random prefix plus "_" plus the numeric user id. Tokens are not
// signed and never persisted server-side; Parse only recovers the trailing
// user id, it cannot validate the prefix against anything. The chat endpoint
// does NOT accept these tokens — it uses the legacy stored-hash credential
// (see middleware.LegacyHashAuth).
package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
)

const randomBytes = 32

var ErrMalformed = errors.New("token: malformed token")

// IssuedToken is the decomposed wire token <random>_<userID>.
type IssuedToken struct {
	Random string
	UserID uint
}

func (t IssuedToken) String() string {
	return t.Random + "_" + strconv.FormatUint(uint64(t.UserID), 10)
}

// Issue выдаёт новый токен для пользователя
func Issue(userID uint) (IssuedToken, error) {
	buf := make([]byte, randomBytes)
	if _, err := rand.Read(buf); err != nil {
		return IssuedToken{}, err
	}
	return IssuedToken{
		Random: base64.RawURLEncoding.EncodeToString(buf),
		UserID: userID,
	}, nil
}

// Parse разбирает токен, извлекая id пользователя из хвоста.
// Only the part after the last "_" is inspected; a token with no underscore is
// parsed as a bare id. The random prefix is never checked.
func Parse(s string) (IssuedToken, error) {
	random, suffix := "", s
	if idx := strings.LastIndex(s, "_"); idx >= 0 {
		random, suffix = s[:idx], s[idx+1:]
	}
	id, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		return IssuedToken{}, ErrMalformed
	}
	return IssuedToken{Random: random, UserID: uint(id)}, nil
}
