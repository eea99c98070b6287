// Package input turns user supplied text into the byte buffer handed to
// the wire decoder.
package input

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Format selects how text input is decoded.
type Format string

const (
	FormatAuto   Format = "auto"
	FormatHex    Format = "hex"
	FormatBase64 Format = "base64"
)

var (
	ErrUnknownFormat = errors.New("input: unknown format")
	ErrOddLengthHex  = errors.New("input: odd number of hex digits")
	ErrInvalidHex    = errors.New("input: invalid hex")
	ErrInvalidBase64 = errors.New("input: invalid base64")
)

// FormatError reports text that could not be turned into bytes. It is the
// only fatal error of a decode call.
type FormatError struct {
	Format Format
	Err    error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("input is not valid %s: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// ParseFormat parses a format name; the empty string means auto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatHex, FormatBase64:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
	}
}

// Normalize decodes text into bytes. Whitespace is ignored everywhere.
//
// In auto mode text made only of hex digits is hex, everything else is
// base64. The classification is final: hex-looking text with an odd
// number of digits is rejected instead of being retried as base64 or
// padded, since either would hide malformed input.
func Normalize(text string, format Format) ([]byte, error) {
	compact := stripSpace(text)

	switch format {
	case FormatAuto, "":
		if isHex(compact) {
			return decodeHex(compact)
		}
		return decodeBase64(compact)
	case FormatHex:
		return decodeHex(compact)
	case FormatBase64:
		return decodeBase64(compact)
	default:
		return nil, &FormatError{Format: format, Err: ErrUnknownFormat}
	}
}

// Detect reports which format auto mode would pick for text.
func Detect(text string) Format {
	if isHex(stripSpace(text)) {
		return FormatHex
	}
	return FormatBase64
}

func decodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, &FormatError{Format: FormatHex, Err: ErrOddLengthHex}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &FormatError{Format: FormatHex, Err: fmt.Errorf("%w: %v", ErrInvalidHex, err)}
	}
	return b, nil
}

// decodeBase64 accepts the standard and URL-safe alphabets with or
// without padding.
func decodeBase64(s string) ([]byte, error) {
	s = strings.NewReplacer("-", "+", "_", "/").Replace(s)
	if rem := len(s) % 4; rem != 0 {
		s += strings.Repeat("=", 4-rem)
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &FormatError{Format: FormatBase64, Err: fmt.Errorf("%w: %v", ErrInvalidBase64, err)}
	}
	return b, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
