// Package digest computes the content hashes used to build cache-busted public names.
package digest

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/syntax-framework/statics/cmn"
	"github.com/zeebo/blake3"
)

// Algorithm name of a supported hash function
type Algorithm string

const (
	MD5    Algorithm = "md5"
	XXH64  Algorithm = "xxh64"
	SHA256 Algorithm = "sha256"
	BLAKE3 Algorithm = "blake3"
)

// Default is the algorithm used when none is configured
const Default = MD5

var errorRead = cmn.Err(
	"digest.read",
	"Could not read the file content.", "Path: %s", "Caused by: %s",
)

var errorAlgorithm = cmn.Err(
	"digest.algorithm",
	"Unknown hash algorithm.", "Algorithm: %q", "Supported: %s",
)

var constructors = map[Algorithm]func() hash.Hash{
	MD5:    md5.New,
	XXH64:  func() hash.Hash { return xxhash.New() },
	SHA256: sha256.New,
	BLAKE3: func() hash.Hash { return blake3.New() },
}

// Algorithms list the supported algorithm names
func Algorithms() []Algorithm {
	return []Algorithm{MD5, XXH64, SHA256, BLAKE3}
}

// Parse validates an algorithm name. The empty name resolves to Default.
func Parse(name string) (Algorithm, error) {
	algo := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if algo == "" {
		return Default, nil
	}
	if _, exists := constructors[algo]; !exists {
		names := make([]string, 0, len(constructors))
		for _, a := range Algorithms() {
			names = append(names, string(a))
		}
		return "", errorAlgorithm(name, strings.Join(names, ", "))
	}
	return algo, nil
}

func newHash(algo Algorithm) (hash.Hash, error) {
	if algo == "" {
		algo = Default
	}
	constructor, exists := constructors[algo]
	if !exists {
		_, err := Parse(string(algo))
		return nil, err
	}
	return constructor(), nil
}

// Bytes computes the lowercase hexadecimal digest of content
func Bytes(content []byte, algo Algorithm) (string, error) {
	h, err := newHash(algo)
	if err != nil {
		return "", err
	}
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// File reads the complete content of the file and computes its lowercase hexadecimal digest. Also returns the number
// of bytes read.
func File(filepath string, algo Algorithm) (string, int64, error) {
	h, err := newHash(algo)
	if err != nil {
		return "", 0, err
	}

	file, err := os.Open(filepath)
	if err != nil {
		return "", 0, errorRead(filepath, err)
	}
	defer file.Close()

	size, err := io.Copy(h, file)
	if err != nil {
		return "", 0, errorRead(filepath, err)
	}
	return hex.EncodeToString(h.Sum(nil)), size, nil
}

// Truncate shortens a hex digest to length characters. Zero (or a length bigger than the digest) keeps it whole.
func Truncate(digest string, length int) string {
	if length <= 0 || length >= len(digest) {
		return digest
	}
	return digest[:length]
}
