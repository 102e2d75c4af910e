package text

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"hash/fnv"
	"strings"

	"github.com/msto63/mRW/foundation/core/errors"
)

// Hash algorithms
const (
	FNV1a  = "fnv1a"
	SHA256 = "sha256"
)

// HashResult is a hex digest. FNV-1a digests are for display only and must
// not be used where collision resistance matters.
type HashResult struct {
	Algorithm     string `json:"algorithm"`
	Digest        string `json:"digest"`
	Cryptographic bool   `json:"cryptographic"`
}

// Algorithms lists the supported hash algorithms
func Algorithms() []string {
	return []string{FNV1a, SHA256}
}

// Hash computes the digest of s with the named algorithm
func Hash(s, algorithm string) (HashResult, error) {
	var h hash.Hash
	res := HashResult{}
	switch strings.ToLower(strings.ReplaceAll(algorithm, "-", "")) {
	case "", FNV1a, "fnv":
		h = fnv.New64a()
		res.Algorithm = FNV1a
	case SHA256:
		h = sha256.New()
		res.Algorithm = SHA256
		res.Cryptographic = true
	default:
		return HashResult{}, errors.InvalidArgument(errors.ModuleText, "hash", algorithm, "fnv1a or sha256")
	}
	h.Write([]byte(s))
	res.Digest = hex.EncodeToString(h.Sum(nil))
	return res, nil
}
