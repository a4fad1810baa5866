package services

import (
	"encoding/base64"
	"testing"
)

func TestDecodeImageDataURIAcceptsAnyImageType(t *testing.T) {
	t.Parallel()
	raw := []byte("not really pixels")
	payload := base64.StdEncoding.EncodeToString(raw)

	for _, mime := range []string{"image/jpeg", "image/png", "image/webp", "image/heic"} {
		data, err := decodeImageDataURI("data:" + mime + ";base64," + payload)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", mime, err)
		}
		if string(data) != string(raw) {
			t.Fatalf("%s: payload corrupted: %q", mime, data)
		}
	}
}

func TestDecodeImageDataURIRejectsBadInput(t *testing.T) {
	t.Parallel()
	payload := base64.StdEncoding.EncodeToString([]byte("x"))
	cases := []string{
		"data:text/plain;base64," + payload, // not an image
		"no comma here",
		payload,                        // bare base64, no head
		"data:image/png;base64,???###", // invalid base64
	}
	for _, in := range cases {
		if _, err := decodeImageDataURI(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
