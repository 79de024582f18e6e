package id

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInquiryID(t *testing.T) {
	got, err := NewInquiryID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "inq_"))
	assert.Len(t, got, len("inq_")+DefaultLength)
	assert.NoError(t, ValidatePrefix(got, PrefixInquiry))
	assert.Error(t, ValidatePrefix(got, PrefixAgent))
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		s, err := Generate(0)
		require.NoError(t, err)
		require.False(t, seen[s], "duplicate id %s", s)
		seen[s] = true
	}
}

func FuzzParsePrefixedID(f *testing.F) {
	for _, seed := range []string{"inq_xK9mP2vL3nQ", "agt_abc", "", "nounderscore", "_lead", "trail_", "a_b_c", "中文_测试"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			return
		}
		prefix, short, err := ParsePrefixedID(input)
		if err != nil {
			return
		}
		if prefix+"_"+short != input {
			t.Errorf("round trip mismatch: %q -> %q + %q", input, prefix, short)
		}
		if prefix == "" || short == "" {
			t.Errorf("empty component accepted for %q", input)
		}
	})
}
