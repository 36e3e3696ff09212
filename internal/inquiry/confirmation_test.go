package inquiry

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idShape = regexp.MustCompile(`^(QT|CT)-[0-9]+-[0-9A-Z]{9}$`)

func TestIDGeneratorShape(t *testing.T) {
	gen, err := NewIDGenerator()
	require.NoError(t, err)

	for _, prefix := range []string{quotePrefix, contactPrefix} {
		id := gen.Next(prefix)
		assert.Regexp(t, idShape, id)
		assert.Equal(t, prefix+"-", id[:3])
	}
}

func TestIDGeneratorUsesClockAndUppercases(t *testing.T) {
	gen := &IDGenerator{
		now:    func() time.Time { return time.UnixMilli(1_700_000_000_123) },
		suffix: func() string { return "abc123xyz" },
	}
	assert.Equal(t, "QT-1700000000123-ABC123XYZ", gen.Next(quotePrefix))
}

func TestIDGeneratorDistinct(t *testing.T) {
	gen, err := NewIDGenerator()
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for range 500 {
		id := gen.Next(quotePrefix)
		_, dup := seen[id]
		require.False(t, dup, id)
		seen[id] = struct{}{}
	}
}
