package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	pnrAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	pnrLength   = 6
)

// GeneratePNR returns prefix followed by six random uppercase alphanumerics.
// Collisions with existing references are not checked.
func GeneratePNR(prefix string) (string, error) {
	max := big.NewInt(int64(len(pnrAlphabet)))
	code := make([]byte, pnrLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate pnr: %w", err)
		}
		code[i] = pnrAlphabet[n.Int64()]
	}
	return prefix + string(code), nil
}
