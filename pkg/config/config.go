// Package config handles gdscore's engine configuration via environment
// variables, an env-var-first approach to deployment configuration.
//
// Configuration is loaded from environment variables using LoadFromEnv() and
// can be validated with Validate() before use.
//
// Example Usage:
//
//	cfg := config.LoadFromEnv()
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("invalid config: %v", err)
//	}
//
// Environment Variables:
//
//   - GDSCORE_CONCURRENCY=0          (0 = runtime.NumCPU())
//   - GDSCORE_MAX_ITERATIONS=20
//   - GDSCORE_PARTITIONING=range     ("range" | "degree")
//   - GDSCORE_PAGE_SIZE=4096
//   - GDSCORE_MEMORY_LIMIT=0         (0 = unlimited, GOMEMLIMIT)
//   - GDSCORE_GC_PERCENT=100         (GOGC)
//   - GDSCORE_POOL_ENABLED=true
//   - GDSCORE_POOL_MAX_SIZE=1048576
//   - GDSCORE_LOG_LEVEL=INFO
//   - GDSCORE_LOG_FORMAT=json
package config

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/orneryd/gdscore/pkg/pool"
)

// Partitioning names the node-partitioning strategy the Pregel engine uses
// to split a superstep's compute phase across workers.
type Partitioning string

const (
	// PartitioningRange splits [0, node_count) into contiguous ranges, one
	// per worker — cheap to compute, can skew if degree is unevenly
	// distributed across id ranges.
	PartitioningRange Partitioning = "range"
	// PartitioningDegree balances workers by cumulative degree rather than
	// raw node count, trading partition-build cost for better load balance
	// on skewed graphs.
	PartitioningDegree Partitioning = "degree"
)

// EngineConfig holds Pregel engine defaults loaded from environment
// variables.
type EngineConfig struct {
	// Concurrency bounds how many goroutines a superstep's compute phase
	// uses. 0 means runtime.NumCPU().
	Concurrency int
	// MaxIterations bounds how many supersteps a computation runs before
	// being force-stopped, independent of vote-to-halt convergence.
	MaxIterations int
	// Partitioning selects the default node-partitioning strategy.
	Partitioning Partitioning
	// PageSize is the element count per HugeArray page.
	PageSize int
}

// RuntimeConfig holds Go runtime tuning and object-pooling settings.
type RuntimeConfig struct {
	// MemoryLimit is the soft memory limit (GOMEMLIMIT) in bytes. 0 means
	// unlimited (Go manages automatically).
	MemoryLimit int64
	// MemoryLimitStr is the human-readable form used to derive MemoryLimit
	// (e.g. "2GB", "512MB").
	MemoryLimitStr string
	// GCPercent controls GC aggressiveness (GOGC). 100 is the Go default.
	GCPercent int
	// PoolEnabled controls whether pkg/pool reuses page/scratch buffers.
	PoolEnabled bool
	// PoolMaxSize bounds the largest buffer pkg/pool will keep pooled.
	PoolMaxSize int
}

// LoggingConfig holds structured-logging settings consumed by main()/cmd
// wiring when constructing the process-wide slog handler.
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR.
	Level string
	// Format is "json" or "text".
	Format string
	// Output is "stdout", "stderr", or a file path.
	Output string
}

// Config holds all gdscore configuration loaded from environment variables.
type Config struct {
	Engine  EngineConfig
	Runtime RuntimeConfig
	Logging LoggingConfig
}

// LoadFromEnv loads configuration from environment variables, applying
// sensible defaults for anything unset so LoadFromEnv() can be called
// without any environment variables present.
func LoadFromEnv() *Config {
	cfg := &Config{}

	cfg.Engine.Concurrency = getEnvInt("GDSCORE_CONCURRENCY", 0)
	cfg.Engine.MaxIterations = getEnvInt("GDSCORE_MAX_ITERATIONS", 20)
	cfg.Engine.Partitioning = Partitioning(getEnv("GDSCORE_PARTITIONING", string(PartitioningRange)))
	cfg.Engine.PageSize = getEnvInt("GDSCORE_PAGE_SIZE", 4096)

	cfg.Runtime.MemoryLimitStr = getEnv("GDSCORE_MEMORY_LIMIT", "0")
	cfg.Runtime.MemoryLimit = parseMemorySize(cfg.Runtime.MemoryLimitStr)
	cfg.Runtime.GCPercent = getEnvInt("GDSCORE_GC_PERCENT", 100)
	cfg.Runtime.PoolEnabled = getEnvBool("GDSCORE_POOL_ENABLED", true)
	cfg.Runtime.PoolMaxSize = getEnvInt("GDSCORE_POOL_MAX_SIZE", 1<<20)

	cfg.Logging.Level = getEnv("GDSCORE_LOG_LEVEL", "INFO")
	cfg.Logging.Format = getEnv("GDSCORE_LOG_FORMAT", "json")
	cfg.Logging.Output = getEnv("GDSCORE_LOG_OUTPUT", "stdout")

	return cfg
}

// Validate checks the configuration for logical errors. Call after
// LoadFromEnv() and before constructing an engine from it.
func (c *Config) Validate() error {
	if c.Engine.Concurrency < 0 {
		return fmt.Errorf("invalid concurrency: %d", c.Engine.Concurrency)
	}
	if c.Engine.MaxIterations <= 0 {
		return fmt.Errorf("invalid max iterations: %d", c.Engine.MaxIterations)
	}
	if c.Engine.Partitioning != PartitioningRange && c.Engine.Partitioning != PartitioningDegree {
		return fmt.Errorf("invalid partitioning: %q", c.Engine.Partitioning)
	}
	if c.Engine.PageSize <= 0 {
		return fmt.Errorf("invalid page size: %d", c.Engine.PageSize)
	}
	if c.Runtime.GCPercent <= 0 {
		return fmt.Errorf("invalid gc percent: %d", c.Runtime.GCPercent)
	}
	return nil
}

// ResolvedConcurrency returns Concurrency, substituting runtime.NumCPU()
// when it is 0.
func (c *EngineConfig) ResolvedConcurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.NumCPU()
}

// String returns a safe string representation of the Config, suitable for
// logging at startup.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Concurrency: %d, MaxIterations: %d, Partitioning: %s, PageSize: %d}",
		c.Engine.Concurrency, c.Engine.MaxIterations, c.Engine.Partitioning, c.Engine.PageSize,
	)
}

// ApplyRuntimeMemory applies the runtime memory settings to the Go runtime.
// Should be called early in main() before heavy allocations.
func (c *RuntimeConfig) ApplyRuntimeMemory() {
	if c.MemoryLimit > 0 {
		debug.SetMemoryLimit(c.MemoryLimit)
	}
	if c.GCPercent != 100 {
		debug.SetGCPercent(c.GCPercent)
	}
}

// ApplyPooling configures pkg/pool's global buffer pools from this
// RuntimeConfig. Should be called early in main(), before any HugeArray or
// Pregel messenger allocates a buffer.
func (c *RuntimeConfig) ApplyPooling() {
	pool.Configure(pool.Config{Enabled: c.PoolEnabled, MaxSize: c.PoolMaxSize})
}

// Helper functions for environment variable parsing.

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		val = strings.ToLower(val)
		return val == "true" || val == "1" || val == "yes" || val == "on"
	}
	return defaultVal
}

// parseMemorySize parses a human-readable memory size string. Supports
// "1024", "1KB", "1MB", "1GB", "1TB", "0", "unlimited".
func parseMemorySize(s string) int64 {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" || s == "0" || s == "UNLIMITED" {
		return 0
	}

	s = strings.TrimSuffix(s, "B")

	var multiplier int64 = 1
	switch {
	case strings.HasSuffix(s, "K"):
		multiplier = 1024
		s = strings.TrimSuffix(s, "K")
	case strings.HasSuffix(s, "M"):
		multiplier = 1024 * 1024
		s = strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "G"):
		multiplier = 1024 * 1024 * 1024
		s = strings.TrimSuffix(s, "G")
	case strings.HasSuffix(s, "T"):
		multiplier = 1024 * 1024 * 1024 * 1024
		s = strings.TrimSuffix(s, "T")
	}

	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return val * multiplier
}

// FormatMemorySize formats bytes as a human-readable string.
func FormatMemorySize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
