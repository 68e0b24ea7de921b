// Package pool provides object pooling for gdscore to reduce allocations.
//
// Object pooling reuses allocated buffers instead of creating new ones,
// reducing GC pressure for high-frequency operations. Pregel's per-superstep
// message buffers are the primary consumer: the sync and async queue
// messengers churn one small []float64 per node on a predictable cadence
// (allocate on first send, release at InitIteration or Release), which is
// exactly what sync.Pool amortizes.
//
// Pooled objects:
//   - Pregel message accumulation slices (per-node inbox during a superstep)
//   - int64/float64 page buffers and int64 id scratch slices, for callers
//     outside the generic HugeArray core that want pooled scratch space
//     (the core itself stays on make([]T, ...): it is parameterized over T
//     and cannot route to these int64/float64-specific pools without type
//     assertions that would undercut the point of the generic design)
//
// Usage:
//
//	buf := pool.GetMessageSlice()
//	defer pool.PutMessageSlice(buf)
package pool

import (
	"sync"
)

// Config configures object pooling behavior.
type Config struct {
	// Enabled controls whether pooling is active
	Enabled bool

	// MaxSize limits the maximum slice capacity kept in each pool
	MaxSize int
}

var globalConfig = Config{
	Enabled: true,
	MaxSize: 1 << 20,
}

// Configure sets global pool configuration.
// Should be called early during initialization.
func Configure(config Config) {
	globalConfig = config

	// Reinitialize pools to ensure New functions are set correctly
	initPools()
}

// initPools reinitializes all pools with their New functions.
func initPools() {
	int64PagePool = sync.Pool{
		New: func() any {
			return make([]int64, 0, defaultPageSize)
		},
	}
	float64PagePool = sync.Pool{
		New: func() any {
			return make([]float64, 0, defaultPageSize)
		},
	}
	messageSlicePool = sync.Pool{
		New: func() any {
			return make([]float64, 0, 8)
		},
	}
	idSlicePool = sync.Pool{
		New: func() any {
			return make([]int64, 0, 64)
		},
	}
}

const defaultPageSize = 4096

// IsEnabled returns whether pooling is enabled.
func IsEnabled() bool {
	return globalConfig.Enabled
}

// =============================================================================
// int64 Page Pool (scratch pages for callers outside the HugeArray core)
// =============================================================================

var int64PagePool = sync.Pool{
	New: func() any {
		return make([]int64, 0, defaultPageSize)
	},
}

// GetInt64Page returns a zeroed []int64 slice of length size from the pool.
func GetInt64Page(size int) []int64 {
	if !globalConfig.Enabled {
		return make([]int64, size)
	}
	buf := int64PagePool.Get().([]int64)
	if cap(buf) < size {
		return make([]int64, size)
	}
	buf = buf[:size]
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// PutInt64Page returns a page to the pool.
func PutInt64Page(buf []int64) {
	if !globalConfig.Enabled {
		return
	}
	if cap(buf) > globalConfig.MaxSize {
		return
	}
	int64PagePool.Put(buf[:0])
}

// =============================================================================
// float64 Page Pool (scratch pages for callers outside the HugeArray core)
// =============================================================================

var float64PagePool = sync.Pool{
	New: func() any {
		return make([]float64, 0, defaultPageSize)
	},
}

// GetFloat64Page returns a zeroed []float64 slice of length size from the pool.
func GetFloat64Page(size int) []float64 {
	if !globalConfig.Enabled {
		return make([]float64, size)
	}
	buf := float64PagePool.Get().([]float64)
	if cap(buf) < size {
		return make([]float64, size)
	}
	buf = buf[:size]
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// PutFloat64Page returns a page to the pool.
func PutFloat64Page(buf []float64) {
	if !globalConfig.Enabled {
		return
	}
	if cap(buf) > globalConfig.MaxSize {
		return
	}
	float64PagePool.Put(buf[:0])
}

// =============================================================================
// Pregel Message Slice Pool
// =============================================================================

var messageSlicePool = sync.Pool{
	New: func() any {
		return make([]float64, 0, 8)
	},
}

// GetMessageSlice returns an empty message accumulation slice from the pool.
// Used by async/sync queue messengers to collect a node's inbox for one
// superstep.
func GetMessageSlice() []float64 {
	if !globalConfig.Enabled {
		return make([]float64, 0, 8)
	}
	return messageSlicePool.Get().([]float64)[:0]
}

// PutMessageSlice returns a message slice to the pool.
func PutMessageSlice(s []float64) {
	if !globalConfig.Enabled {
		return
	}
	if cap(s) > globalConfig.MaxSize {
		return
	}
	messageSlicePool.Put(s[:0])
}

// =============================================================================
// ID Scratch Slice Pool (partitioning, neighbor collection)
// =============================================================================

var idSlicePool = sync.Pool{
	New: func() any {
		return make([]int64, 0, 64)
	},
}

// GetIDSlice returns an empty int64 scratch slice from the pool.
func GetIDSlice() []int64 {
	if !globalConfig.Enabled {
		return make([]int64, 0, 64)
	}
	return idSlicePool.Get().([]int64)[:0]
}

// PutIDSlice returns an int64 scratch slice to the pool.
func PutIDSlice(s []int64) {
	if !globalConfig.Enabled {
		return
	}
	if cap(s) > globalConfig.MaxSize {
		return
	}
	idSlicePool.Put(s[:0])
}
