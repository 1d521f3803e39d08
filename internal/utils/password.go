package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. These are security-relevant constants: verify is
// only deterministic against hashes produced with the same values, and any
// other service sharing the users table must reproduce them exactly.
const (
	argonMemory      = 19456 // KiB
	argonTime        = 2
	argonParallelism = 1
	argonKeyLength   = 32
	argonSaltLength  = 16
)

// HashPassword derives an argon2id digest of password with a fresh random
// salt and returns it in PHC string format:
//
//	$argon2id$v=19$m=19456,t=2,p=1$<salt-b64>$<hash-b64>
//
// The returned string embeds the salt and all cost parameters, so it is
// self-contained and can be verified without extra columns.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey(
		[]byte(password),
		salt,
		argonTime,
		argonMemory,
		argonParallelism,
		argonKeyLength,
	)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonTime,
		argonParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// VerifyPassword reports whether password matches the stored PHC-encoded
// argon2id digest.
//
// The comparison is constant-time. A malformed or truncated stored hash
// verifies as false — the function fails closed and never panics, so a
// corrupted row degrades to a failed login instead of a server error.
func VerifyPassword(encodedHash, password string) bool {
	salt, hash, time, memory, threads, ok := decodePasswordHash(encodedHash)
	if !ok {
		return false
	}

	candidate := argon2.IDKey(
		[]byte(password),
		salt,
		time,
		memory,
		threads,
		uint32(len(hash)),
	)

	return subtle.ConstantTimeCompare(hash, candidate) == 1
}

// decodePasswordHash parses a PHC argon2id string into its salt, digest and
// cost parameters. ok is false on any structural or decoding mismatch.
func decodePasswordHash(encodedHash string) (salt, hash []byte, time, memory uint32, threads uint8, ok bool) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, false
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, false
	}

	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(hash) == 0 {
		return nil, nil, 0, 0, 0, false
	}

	return salt, hash, time, memory, threads, true
}
