package types

import (
	"strings"

	"github.com/gagliardetto/solana-go"
)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// Uint64Ptr converts a uint64 to a pointer to a uint64
func Uint64Ptr(v uint64) *uint64 {
	return &v
}

// StringNilOrEmpty checks if a pointer to a string is nil or empty
func StringNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// SafeString returns a safe string from a pointer to a string
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IsSolanaAddress checks if a string is a valid base58 encoded Solana public key
func IsSolanaAddress(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := solana.PublicKeyFromBase58(s)
	return err == nil
}
