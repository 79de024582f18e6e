// Package id generates prefixed identifiers such as "inq_4fK9mP2vL3nQ".
// The prefix names the aggregate so ids are recognisable in logs and URLs.
package id

import (
	"crypto/rand"
	"fmt"
	"strings"
)

const (
	PrefixInquiry = "inq"
	PrefixAgent   = "agt"

	DefaultLength = 12

	separator = "_"
	base62    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	// bytes >= rejectAbove would bias the modulo toward the first characters.
	rejectAbove = 256 - 256%len(base62)
)

// Generate returns length random base62 characters.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	var sb strings.Builder
	sb.Grow(length)
	buf := make([]byte, length+length/2)
	for sb.Len() < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= rejectAbove {
				continue
			}
			sb.WriteByte(base62[int(b)%len(base62)])
			if sb.Len() == length {
				break
			}
		}
	}
	return sb.String(), nil
}

func GenerateWithPrefix(prefix string, length int) (string, error) {
	s, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + separator + s, nil
}

func NewInquiryID() (string, error) { return GenerateWithPrefix(PrefixInquiry, DefaultLength) }

func NewAgentID() (string, error) { return GenerateWithPrefix(PrefixAgent, DefaultLength) }

// ParsePrefixedID splits on the first separator. Both halves must be non-empty.
func ParsePrefixedID(prefixedID string) (prefix, random string, err error) {
	prefix, random, ok := strings.Cut(prefixedID, separator)
	if !ok || prefix == "" || random == "" {
		return "", "", fmt.Errorf("malformed id %q", prefixedID)
	}
	return prefix, random, nil
}

func ValidatePrefix(prefixedID, want string) error {
	got, _, err := ParsePrefixedID(prefixedID)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("id %q has prefix %q, want %q", prefixedID, got, want)
	}
	return nil
}
