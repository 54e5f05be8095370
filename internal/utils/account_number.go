package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateAccountNumber produces a candidate account number: the current
// four-digit year concatenated with a uniformly random six-digit value in
// [100000, 999999]. Uniqueness is the caller's responsibility (the
// provisioning service retries against the store on collision).
func GenerateAccountNumber(now time.Time) (string, error) {
	const min, max = 100000, 999999
	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return "", fmt.Errorf("failed to generate random account number: %w", err)
	}
	return fmt.Sprintf("%04d%06d", now.Year(), n.Int64()+min), nil
}
