package transform

import (
	"encoding/base64"
	"fmt"
)

// Reverse returns a transform reversing the characters of its input.
// Invalid UTF-8 fails with ErrTransform.
func Reverse() Transform {
	return reverse{}
}

type reverse struct{}

const reverseName = "reverse"

func (reverse) String() string { return reverseName }

func (reverse) Encode(s string) (string, error) {
	rs, err := runesOf(reverseName, s)
	if err != nil {
		return "", err
	}
	reverseRunes(rs)
	return string(rs), nil
}

func (r reverse) Decode(s string) (string, error) {
	return r.Encode(s)
}

// Base64 returns a transform to and from standard padded base64.
func Base64() Transform {
	return b64{}
}

type b64 struct{}

func (b64) String() string { return "base64" }

func (b64) Encode(s string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(s)), nil
}

func (b64) Decode(s string) (string, error) {
	d, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransform, err)
	}
	return string(d), nil
}
