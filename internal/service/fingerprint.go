package service

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/Dan9191/finplan-service/internal/models"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint is a keyed BLAKE2b-256 digest of the encoded result. Equal
// results give equal fingerprints, so it doubles as an HTTP entity tag.
func Fingerprint(key []byte, r models.PlanningResult) (string, error) {
	h, err := blake2b.New256(key)
	if err != nil {
		return "", fmt.Errorf("failed to init fingerprint: %w", err)
	}
	if err := json.NewEncoder(h).Encode(r); err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
