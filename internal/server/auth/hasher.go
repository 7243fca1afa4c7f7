// Package auth provides the credential primitives of the server: argon2id
// password hashing and JWT access-token issuance/verification.
package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

// Argon2Params holds the argon2id cost settings used when producing new
// hashes. Verification always honours the parameters embedded in the
// stored hash, so these can be raised without invalidating old records.
type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params returns OWASP-recommended defaults for argon2id.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Memory:      64 * 1024, // 64 MiB
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Argon2Hasher hashes and verifies passwords using argon2id in PHC string
// format. A fresh random salt is drawn per call, so hashing the same
// password twice never yields the same string.
type Argon2Hasher struct {
	params Argon2Params
}

func NewArgon2Hasher(params Argon2Params) *Argon2Hasher {
	return &Argon2Hasher{params: params}
}

// Hash derives an argon2id hash of the password. The only failure mode is
// the system entropy source, reported as common.ErrHashing.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := common.GenerateRandByteArray(int(h.params.SaltLength))

	hash := argon2.IDKey(
		[]byte(password),
		salt,
		h.params.Iterations,
		h.params.Memory,
		h.params.Parallelism,
		h.params.KeyLength,
	)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.Memory, h.params.Iterations, h.params.Parallelism, b64Salt, b64Hash), nil
}

// Verify recomputes the hash with the parameters embedded in encoded and
// compares in constant time. A mismatch is (false, nil); an error is
// returned only when encoded is not a well-formed argon2id hash.
func (h *Argon2Hasher) Verify(password, encoded string) (bool, error) {
	params, salt, hash, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey(
		[]byte(password),
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		params.KeyLength,
	)

	return subtle.ConstantTimeCompare(hash, candidate) == 1, nil
}

func decodeHash(encoded string) (*Argon2Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, nil, fmt.Errorf("%w: invalid argon2id hash format", common.ErrHashing)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, nil, fmt.Errorf("%w: unsupported argon2 version", common.ErrHashing)
	}

	params := &Argon2Params{}
	var parallelism uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &parallelism); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: invalid argon2 parameters", common.ErrHashing)
	}
	if parallelism == 0 || parallelism > 255 {
		return nil, nil, nil, fmt.Errorf("%w: invalid parallelism", common.ErrHashing)
	}
	params.Parallelism = uint8(parallelism)

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: invalid salt encoding", common.ErrHashing)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: invalid hash encoding", common.ErrHashing)
	}

	params.SaltLength = uint32(len(salt))
	params.KeyLength = uint32(len(hash))
	return params, salt, hash, nil
}
