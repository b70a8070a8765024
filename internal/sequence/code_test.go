package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aqua_distribution/internal/sequence"
)

func TestNextCode_NoPriorCode(t *testing.T) {
	assert.Equal(t, "TAR001", sequence.NextCode("TAR", ""))
	assert.Equal(t, "PRG001", sequence.NextCode("PRG", ""))
}

func TestNextCode_Increments(t *testing.T) {
	cases := []struct {
		prefix, last, want string
	}{
		{"TAR", "TAR001", "TAR002"},
		{"TAR", "TAR005", "TAR006"},
		{"TAR", "TAR099", "TAR100"},
		{"HOR", "HOR042", "HOR043"},
		{"RUT", "RUT999", "RUT1000"},
		{"TAR", "TAR1000", "TAR1001"}, // width keeps growing, never truncates
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sequence.NextCode(c.prefix, c.last), "last=%s", c.last)
	}
}

func TestNextCode_MalformedHistoryFallsBackToOne(t *testing.T) {
	// A malformed historical code must never block writes; the parsed
	// number is treated as zero.
	cases := []string{
		"TARabc",              // non-numeric suffix
		"TAR",                 // empty suffix
		"XYZ123",              // prefix absent, remainder still non-numeric after strip
		"TAR-12",              // negative
		"TAR99999999999999999999999999", // overflows int
	}
	for _, last := range cases {
		assert.Equal(t, "TAR001", sequence.NextCode("TAR", last), "last=%s", last)
	}
}
