package threecommas

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Signer computes 3Commas request signatures. The zero value is not usable;
// construct one with NewSigner.
type Signer struct {
	secret []byte
}

// NewSigner returns a Signer keyed by the account's API secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the lowercase hex HMAC-SHA256 of path+query.
//
// path is the request path relative to the host (prefix and suffix, no
// query string) and query is the canonical query string without the leading
// "?". The server signs the same concatenation, so changing the order, adding
// a separator, or signing a differently escaped query yields a signature the
// server rejects with 401.
func (s *Signer) Sign(path, query string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(path))
	mac.Write([]byte(query))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches Sign(path, query). The comparison
// is constant-time.
func (s *Signer) Verify(path, query, signature string) bool {
	want := s.Sign(path, query)
	return hmac.Equal([]byte(want), []byte(strings.ToLower(signature)))
}

// SnakeCase converts a camelCase parameter name to the snake_case form used on
// the wire: every ASCII uppercase letter becomes "_" followed by its lowercase
// form. Keys without uppercase letters are returned unchanged, which makes the
// conversion idempotent.
func SnakeCase(key string) string {
	if strings.IndexFunc(key, isUpperASCII) < 0 {
		return key
	}

	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := range len(key) {
		c := key[i]
		if isUpperASCII(rune(c)) {
			b.WriteByte('_')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isUpperASCII(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
