package ssr

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/odvcencio/furry-hooks/demo"
)

var (
	// ErrMalformedPayload is returned for payloads that are not "data.sig".
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrBadSignature is returned when the payload was signed with another key
	// or altered.
	ErrBadSignature = errors.New("payload signature mismatch")
	// ErrNoPayload is returned by Extract when the document has no payload.
	ErrNoPayload = errors.New("no payload in document")
)

// Codec signs page snapshots as msgpack, base64url encoded, followed by a
// truncated HMAC-SHA256: "<data>.<sig>". Signed payloads stay readable.
type Codec struct {
	key []byte
}

// NewCodec creates a codec. Keys shorter than 32 bytes are stretched with SHA-256.
func NewCodec(key []byte) *Codec {
	if len(key) < 32 {
		sum := sha256.Sum256(key)
		key = sum[:]
	}
	return &Codec{key: key}
}

// Encode serializes snap.
func (c *Codec) Encode(snap demo.Snapshot) (string, error) {
	packed, err := msgpack.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	data := base64.RawURLEncoding.EncodeToString(packed)
	sig := base64.RawURLEncoding.EncodeToString(c.sum(packed))
	return data + "." + sig, nil
}

// Decode verifies and deserializes a payload produced by Encode.
func (c *Codec) Decode(payload string) (demo.Snapshot, error) {
	var snap demo.Snapshot
	data, sig, ok := strings.Cut(strings.TrimSpace(payload), ".")
	if !ok {
		return snap, ErrMalformedPayload
	}
	packed, err := base64.RawURLEncoding.DecodeString(data)
	if err != nil {
		return snap, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	want, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return snap, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if !hmac.Equal(want, c.sum(packed)) {
		return snap, ErrBadSignature
	}
	if err := msgpack.Unmarshal(packed, &snap); err != nil {
		return snap, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

func (c *Codec) sum(data []byte) []byte {
	mac := hmac.New(sha256.New, c.key)
	mac.Write(data)
	return mac.Sum(nil)[:16]
}

// Extract returns the payload embedded in a document rendered by Page.
func Extract(doc []byte) (string, error) {
	marker := []byte(`id="` + PayloadID + `">`)
	start := bytes.Index(doc, marker)
	if start < 0 {
		return "", ErrNoPayload
	}
	rest := doc[start+len(marker):]
	end := bytes.Index(rest, []byte("</script>"))
	if end < 0 {
		return "", ErrNoPayload
	}
	return html.UnescapeString(string(rest[:end])), nil
}
