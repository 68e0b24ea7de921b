// Engine-level experimental feature flags, using a global atomic-toggle
// idiom: each flag is a package-level *atomic.Bool* so concurrent readers
// (engine workers) never race with a toggle made by a test fixture, and
// each flag gets a scoped With*Enabled() helper that returns a restore
// func for table-driven tests.
//
// Environment variables (to enable experimental engine behavior):
//
//	GDSCORE_ASYNC_MESSENGER_ENABLED=true
//	GDSCORE_TRACK_SENDER_ENABLED=true
//	GDSCORE_DEGREE_PARTITIONING_DEFAULT=true
package config

import (
	"os"
	"strings"
	"sync/atomic"
)

const (
	// EnvAsyncMessengerEnabled enables the async (single-buffered) Pregel
	// messenger by default instead of the sync double-buffered one.
	EnvAsyncMessengerEnabled = "GDSCORE_ASYNC_MESSENGER_ENABLED"

	// EnvTrackSenderEnabled enables sender tracking in the reducing Pregel
	// messenger by default: the source node id of the last message applied
	// to each target is kept beside the reduced value, in a second pair of
	// per-node arrays.
	EnvTrackSenderEnabled = "GDSCORE_TRACK_SENDER_ENABLED"

	// EnvDegreePartitioningDefault switches the default node-partitioning
	// strategy from range to degree-balanced.
	EnvDegreePartitioningDefault = "GDSCORE_DEGREE_PARTITIONING_DEFAULT"
)

var (
	asyncMessengerEnabled     atomic.Bool
	trackSenderEnabled        atomic.Bool
	degreePartitioningDefault atomic.Bool
)

func init() {
	asyncMessengerEnabled.Store(envFlagDefault(EnvAsyncMessengerEnabled))
	trackSenderEnabled.Store(envFlagDefault(EnvTrackSenderEnabled))
	degreePartitioningDefault.Store(envFlagDefault(EnvDegreePartitioningDefault))
}

func envFlagDefault(key string) bool {
	val := strings.ToLower(os.Getenv(key))
	return val == "true" || val == "1" || val == "yes" || val == "on"
}

// IsAsyncMessengerEnabled reports whether the async messenger is the
// engine-wide default.
func IsAsyncMessengerEnabled() bool { return asyncMessengerEnabled.Load() }

// SetAsyncMessengerEnabled sets the async-messenger-by-default flag.
func SetAsyncMessengerEnabled(enabled bool) { asyncMessengerEnabled.Store(enabled) }

// WithAsyncMessengerEnabled sets the flag true and returns a func restoring
// its prior value, for use in table-driven tests:
//
//	restore := config.WithAsyncMessengerEnabled()
//	defer restore()
func WithAsyncMessengerEnabled() func() {
	prev := asyncMessengerEnabled.Load()
	asyncMessengerEnabled.Store(true)
	return func() { asyncMessengerEnabled.Store(prev) }
}

// IsTrackSenderEnabled reports whether the reducing messenger records
// sender ids by default.
func IsTrackSenderEnabled() bool { return trackSenderEnabled.Load() }

// SetTrackSenderEnabled sets the sender-tracking-by-default flag.
func SetTrackSenderEnabled(enabled bool) { trackSenderEnabled.Store(enabled) }

// WithTrackSenderEnabled sets the flag true and returns a restore func.
func WithTrackSenderEnabled() func() {
	prev := trackSenderEnabled.Load()
	trackSenderEnabled.Store(true)
	return func() { trackSenderEnabled.Store(prev) }
}

// IsDegreePartitioningDefault reports whether Partitioning defaults to
// degree-balanced rather than range partitioning.
func IsDegreePartitioningDefault() bool { return degreePartitioningDefault.Load() }

// SetDegreePartitioningDefault sets the degree-partitioning-by-default flag.
func SetDegreePartitioningDefault(enabled bool) { degreePartitioningDefault.Store(enabled) }

// WithDegreePartitioningDefault sets the flag true and returns a restore
// func.
func WithDegreePartitioningDefault() func() {
	prev := degreePartitioningDefault.Load()
	degreePartitioningDefault.Store(true)
	return func() { degreePartitioningDefault.Store(prev) }
}

// ResetFeatureFlags restores every engine feature flag to its environment-
// derived default, undoing any runtime toggles made by prior tests.
func ResetFeatureFlags() {
	asyncMessengerEnabled.Store(envFlagDefault(EnvAsyncMessengerEnabled))
	trackSenderEnabled.Store(envFlagDefault(EnvTrackSenderEnabled))
	degreePartitioningDefault.Store(envFlagDefault(EnvDegreePartitioningDefault))
}
