package analysis

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DigestionWindowMin != 6*time.Hour || cfg.DigestionWindowMax != 48*time.Hour {
		t.Fatalf("unexpected digestion window: %+v", cfg)
	}
	if cfg.SpicyLevelThreshold != 6 || cfg.MaxRecommendations != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfig_OverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.yaml")
	raw := []byte("spicy_level_threshold: 4\nmax_recommendations: 5\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SpicyLevelThreshold != 4 || cfg.MaxRecommendations != 5 {
		t.Fatalf("expected overrides applied, got %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.MinBucketSamples != 3 {
		t.Fatalf("expected untouched default, got %+v", cfg)
	}
}

func TestLoadConfig_MissingFileErrors(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/analysis.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
