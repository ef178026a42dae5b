package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"
)

// CanonicalJSON renders the schema snapshot deterministically. encoding/json
// writes map keys in sorted order, so equal snapshots always produce equal
// bytes regardless of construction order.
func CanonicalJSON(doc map[string]any) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, &SerializationError{Cause: err}
	}
	return raw, nil
}

// Digest returns the hex-encoded sha256 of the canonical schema bytes.
func Digest(canonical []byte) string {
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}

// changed reports whether newDigest differs from the marker file's contents.
// A missing or unreadable marker counts as changed so the next cycle retries
// generation instead of silently skipping it.
func changed(markerPath, newDigest string) bool {
	raw, err := os.ReadFile(markerPath)
	if err != nil {
		return true
	}
	return strings.TrimSpace(string(raw)) != newDigest
}
