package utils

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// sessionTokenBytes is the entropy of a session token: 32 bytes (256 bits)
// from the CSPRNG.
const sessionTokenBytes = 32

// GenerateSessionToken returns a new opaque session token: 32 bytes from
// the CSPRNG, base32-encoded without padding and lowercased. The token is
// used verbatim as both the sessions primary key and the cookie value, so
// it must stay cookie-safe (no '=', no case-sensitivity surprises through
// intermediaries that normalise header casing).
func GenerateSessionToken() (string, error) {
	raw := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	token := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(raw)

	return strings.ToLower(token), nil
}
