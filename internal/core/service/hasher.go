package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultPBKDF2Iterations matches current OWASP guidance for PBKDF2-SHA256.
	DefaultPBKDF2Iterations = 600_000
	// MinPBKDF2Iterations is the floor applied to configured iteration counts.
	MinPBKDF2Iterations = 100_000

	pbkdf2Method  = "pbkdf2:sha256"
	pbkdf2SaltLen = 16
	pbkdf2KeyLen  = sha256.Size
	saltAlphabet  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	ErrEmptyPassword  = errors.New("password cannot be empty")
	ErrMalformedHash  = errors.New("malformed password hash")
	ErrUnsupportedAlg = errors.New("unsupported password hash algorithm")
)

// PasswordHasher derives and checks salted one-way password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns (true, nil) on match, (false, nil) on mismatch and an
	// error only when the stored hash cannot be parsed.
	Verify(password, encoded string) (bool, error)
}

// PBKDF2Hasher stores hashes as "pbkdf2:sha256:<iterations>$<salt>$<hex>",
// the werkzeug format, so hashes imported from existing user tables keep
// verifying. bcrypt hashes ("$2a$", "$2b$", "$2y$") are still accepted
// for verification.
type PBKDF2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher returns a hasher using iterations rounds. Zero selects
// DefaultPBKDF2Iterations; other values below MinPBKDF2Iterations are raised.
func NewPBKDF2Hasher(iterations int) *PBKDF2Hasher {
	if iterations == 0 {
		iterations = DefaultPBKDF2Iterations
	}
	if iterations < MinPBKDF2Iterations {
		iterations = MinPBKDF2Iterations
	}
	return &PBKDF2Hasher{iterations: iterations}
}

func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	salt, err := randomSalt(pbkdf2SaltLen)
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), h.iterations, pbkdf2KeyLen, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s", pbkdf2Method, h.iterations, salt, hex.EncodeToString(key)), nil
}

func (h *PBKDF2Hasher) Verify(password, encoded string) (bool, error) {
	if strings.HasPrefix(encoded, "$2") {
		err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
		}
	}

	parts := strings.SplitN(encoded, "$", 3)
	if len(parts) != 3 {
		return false, ErrMalformedHash
	}
	method, salt, digest := parts[0], parts[1], parts[2]

	if !strings.HasPrefix(method, pbkdf2Method+":") {
		return false, fmt.Errorf("%w: %s", ErrUnsupportedAlg, method)
	}
	iterations, err := strconv.Atoi(strings.TrimPrefix(method, pbkdf2Method+":"))
	if err != nil || iterations <= 0 {
		return false, fmt.Errorf("%w: bad iteration count", ErrMalformedHash)
	}
	expected, err := hex.DecodeString(digest)
	if err != nil || len(expected) == 0 {
		return false, fmt.Errorf("%w: bad digest", ErrMalformedHash)
	}

	computed := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}

func randomSalt(n int) (string, error) {
	limit := big.NewInt(int64(len(saltAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b[i] = saltAlphabet[idx.Int64()]
	}
	return string(b), nil
}
