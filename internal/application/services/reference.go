package services

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const referenceSuffixLength = 10

// 36^10, the space the random suffix is drawn from.
var referenceSuffixSpace = new(big.Int).Exp(
	big.NewInt(36), big.NewInt(referenceSuffixLength), nil,
)

// OperationReference builds the per-call unique reference the provider uses
// to deduplicate requests: the stable entity number plus a random base-36
// suffix. A fresh suffix is drawn on every invocation, so two orchestrator
// calls for what a caller considers the same operation get different
// references and are NOT deduplicated; callers needing at-most-once retries
// must supply their own stable reference instead.
func OperationReference(stableID string) string {
	return stableID + "-" + randomSuffix()
}

// randomSuffix draws uniformly from [0, 36^10) and renders the value as a
// fixed-width, zero-padded base-36 string.
func randomSuffix() string {
	n, err := rand.Int(rand.Reader, referenceSuffixSpace)
	if err != nil {
		// crypto/rand.Reader failing means the platform randomness
		// source is gone; nothing sensible to return.
		panic(err)
	}
	s := n.Text(36)
	if len(s) < referenceSuffixLength {
		s = strings.Repeat("0", referenceSuffixLength-len(s)) + s
	}
	return s
}
