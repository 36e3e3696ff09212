package featureflags

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rollout/rox-go/v5/server"
)

const (
	namespace       = "feedcatalog"
	defaultLogLevel = "info"
)

// Container holds every remotely controlled flag.
type Container struct {
	Offline  server.RoxFlag
	LogLevel server.RoxString
}

var (
	flags = &Container{
		Offline:  server.NewRoxFlag(false),
		LogLevel: server.NewRoxString(defaultLogLevel, []string{"debug", "info", "warn", "error"}),
	}

	rox      *server.Rox
	ready    atomic.Bool
	override struct {
		sync.RWMutex
		offline  *bool
		logLevel *string
	}
)

// Init registers the flag container and connects to Rox. An empty apiKey
// keeps the defaults and never touches the network.
func Init(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return nil
	}

	rox = server.NewRox()
	rox.Register(namespace, flags)

	options := server.NewRoxOptions(server.RoxOptionsBuilder{})
	select {
	case <-rox.Setup(apiKey, options):
		ready.Store(true)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("rox setup: %w", ctx.Err())
	}
}

// Shutdown disconnects from Rox; a no-op when Init never connected.
func Shutdown() {
	if rox == nil {
		return
	}
	ready.Store(false)
	rox.Shutdown()
}

// Offline reports the kill-switch state.
func Offline() bool {
	override.RLock()
	o := override.offline
	override.RUnlock()
	if o != nil {
		return *o
	}
	if !ready.Load() {
		return false
	}
	return flags.Offline.IsEnabled(nil)
}

// LogLevel reports the desired process log level.
func LogLevel() string {
	override.RLock()
	l := override.logLevel
	override.RUnlock()
	if l != nil {
		return *l
	}
	if !ready.Load() {
		return defaultLogLevel
	}
	return flags.LogLevel.GetValue(nil)
}

// Snapshot is what /_flags shows.
func Snapshot() map[string]any {
	return map[string]any{
		"offline":  Offline(),
		"logLevel": LogLevel(),
		"remote":   ready.Load(),
	}
}

// SetOffline pins the kill-switch locally, taking precedence over Rox.
// Pass nil to fall back to the remote value.
func SetOffline(v *bool) {
	override.Lock()
	override.offline = v
	override.Unlock()
}

// SetLogLevel pins the log level locally. Pass nil to clear.
func SetLogLevel(v *string) {
	override.Lock()
	override.logLevel = v
	override.Unlock()
}
