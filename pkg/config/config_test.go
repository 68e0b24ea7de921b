package config

import "testing"

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg := LoadFromEnv()
	if cfg.Engine.MaxIterations != 20 {
		t.Fatalf("MaxIterations = %d, want 20", cfg.Engine.MaxIterations)
	}
	if cfg.Engine.Partitioning != PartitioningRange {
		t.Fatalf("Partitioning = %q, want %q", cfg.Engine.Partitioning, PartitioningRange)
	}
	if cfg.Engine.PageSize != 4096 {
		t.Fatalf("PageSize = %d, want 4096", cfg.Engine.PageSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("GDSCORE_CONCURRENCY", "8")
	t.Setenv("GDSCORE_MAX_ITERATIONS", "50")
	t.Setenv("GDSCORE_PARTITIONING", "degree")
	t.Setenv("GDSCORE_PAGE_SIZE", "8192")

	cfg := LoadFromEnv()
	if cfg.Engine.Concurrency != 8 {
		t.Fatalf("Concurrency = %d, want 8", cfg.Engine.Concurrency)
	}
	if cfg.Engine.MaxIterations != 50 {
		t.Fatalf("MaxIterations = %d, want 50", cfg.Engine.MaxIterations)
	}
	if cfg.Engine.Partitioning != PartitioningDegree {
		t.Fatalf("Partitioning = %q, want degree", cfg.Engine.Partitioning)
	}
	if cfg.Engine.PageSize != 8192 {
		t.Fatalf("PageSize = %d, want 8192", cfg.Engine.PageSize)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
	}{
		{"negative concurrency", func(c *Config) { c.Engine.Concurrency = -1 }},
		{"zero max iterations", func(c *Config) { c.Engine.MaxIterations = 0 }},
		{"unknown partitioning", func(c *Config) { c.Engine.Partitioning = "bogus" }},
		{"zero page size", func(c *Config) { c.Engine.PageSize = 0 }},
		{"zero gc percent", func(c *Config) { c.Runtime.GCPercent = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadFromEnv()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("Validate() = nil, want error")
			}
		})
	}
}

func TestEngineConfig_ResolvedConcurrency(t *testing.T) {
	cfg := &EngineConfig{Concurrency: 4}
	if cfg.ResolvedConcurrency() != 4 {
		t.Fatalf("ResolvedConcurrency() = %d, want 4", cfg.ResolvedConcurrency())
	}
	cfg.Concurrency = 0
	if cfg.ResolvedConcurrency() <= 0 {
		t.Fatalf("ResolvedConcurrency() = %d, want > 0 when falling back to NumCPU", cfg.ResolvedConcurrency())
	}
}

func TestParseMemorySize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"unlimited", 0},
		{"1024", 1024},
		{"1KB", 1024},
		{"2MB", 2 * 1024 * 1024},
		{"1GB", 1024 * 1024 * 1024},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseMemorySize(tt.in); got != tt.want {
				t.Fatalf("parseMemorySize(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatMemorySize(t *testing.T) {
	if got := FormatMemorySize(1024); got != "1.00 KB" {
		t.Fatalf("FormatMemorySize(1024) = %q, want 1.00 KB", got)
	}
}
