package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewStationToken returns the opaque access token issued to a print
// station at creation time: 24 random bytes hex encoded (48 chars).
// The token is stored in clear because stations present it on every
// print request and admins need to read it back for kiosk setup.
func NewStationToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
