// Package upload produces signatures for direct-to-Cloudinary image uploads.
// The server never proxies image bytes; it only signs the upload parameters
// so the browser can talk to the image store directly.
package upload

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrNotConfigured is returned when any Cloudinary credential is missing.
var ErrNotConfigured = errors.New("upload signing not configured")

// Signer computes Cloudinary API signatures: the SHA-1 hex digest of the
// alphabetically sorted key=value parameter string with the API secret
// appended.
type Signer struct {
	cloudName string
	apiKey    string
	apiSecret string
}

func NewSigner(cloudName, apiKey, apiSecret string) *Signer {
	return &Signer{cloudName: cloudName, apiKey: apiKey, apiSecret: apiSecret}
}

// Signature is everything the browser needs to perform a signed direct upload.
type Signature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
}

// Sign produces an upload signature for the given folder at the current time.
func (s *Signer) Sign(folder string) (*Signature, error) {
	return s.signAt(folder, time.Now().Unix())
}

func (s *Signer) signAt(folder string, timestamp int64) (*Signature, error) {
	if s.cloudName == "" || s.apiKey == "" || s.apiSecret == "" {
		return nil, ErrNotConfigured
	}

	params := map[string]string{
		"folder":    folder,
		"timestamp": fmt.Sprintf("%d", timestamp),
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	payload := strings.Join(pairs, "&") + s.apiSecret

	sum := sha1.Sum([]byte(payload))
	return &Signature{
		Signature: hex.EncodeToString(sum[:]),
		Timestamp: timestamp,
		APIKey:    s.apiKey,
		CloudName: s.cloudName,
	}, nil
}
