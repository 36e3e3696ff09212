package featureflags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsWithoutAPIKey(t *testing.T) {
	require.NoError(t, Init(context.Background(), ""))
	defer Shutdown()

	assert.False(t, Offline())
	assert.Equal(t, "info", LogLevel())
	assert.Equal(t, false, Snapshot()["remote"])
}

func TestLocalOverrides(t *testing.T) {
	on := true
	debug := "debug"
	SetOffline(&on)
	SetLogLevel(&debug)
	t.Cleanup(func() {
		SetOffline(nil)
		SetLogLevel(nil)
	})

	assert.True(t, Offline())
	assert.Equal(t, "debug", LogLevel())

	snap := Snapshot()
	assert.Equal(t, true, snap["offline"])
	assert.Equal(t, "debug", snap["logLevel"])
}
