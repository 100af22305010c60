package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiennsloit/get-agent-sub001/internal/domain"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{"zero", 0, "0 bytes"},
		{"one", 1, "1 bytes"},
		{"kibibyte stays in bytes", 1024, "1024 bytes"},
		{"just under a mebibyte", 1048575, "1048575 bytes"},
		{"exactly a mebibyte", 1048576, "1.00 Mb"},
		{"one and a half mebibytes", 1572864, "1.50 Mb"},
		{"just under a gibibyte", 1073741823, "1024.00 Mb"},
		{"exactly a gibibyte", 1073741824, "1.00 Gb"},
		{"several gibibytes", 5 * 1073741824, "5.00 Gb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bytes(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBytesUnitRanges(t *testing.T) {
	const mib = int64(1) << 20
	const gib = int64(1) << 30

	for _, n := range []int64{0, 512, mib - 1} {
		got, err := Bytes(n)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(got, "bytes"), "%d -> %s", n, got)
	}
	for _, n := range []int64{mib, 3 * mib, gib - 1} {
		got, err := Bytes(n)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(got, "Mb"), "%d -> %s", n, got)
	}
	for _, n := range []int64{gib, 10 * gib, 1 << 50} {
		got, err := Bytes(n)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(got, "Gb"), "%d -> %s", n, got)
	}
}

func TestBytesNegative(t *testing.T) {
	_, err := Bytes(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
