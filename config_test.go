package stockexplorer

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() = %v, want nil for a missing file", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdx.yaml")
	content := "http_timeout_seconds: 30\ndisable_cache: true\nchart_dir: /tmp/charts\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v, want nil", err)
	}
	if cfg.HTTPTimeout != 30 || !cfg.DisableCache || cfg.ChartDir != "/tmp/charts" {
		t.Errorf("LoadConfig() = %+v, want timeout 30, cache disabled, chart dir /tmp/charts", cfg)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", cfg.Timeout())
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdx.yaml")
	if err := os.WriteFile(path, []byte("http_timeout_seconds: -5\nchart_dir: \"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v, want nil", err)
	}
	if cfg.HTTPTimeout != DefaultConfig().HTTPTimeout {
		t.Errorf("HTTPTimeout = %d, want default %d", cfg.HTTPTimeout, DefaultConfig().HTTPTimeout)
	}
	if cfg.ChartDir != "." {
		t.Errorf("ChartDir = %q, want %q", cfg.ChartDir, ".")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdx.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() = nil error for a malformed file, want error")
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v on parse error, want defaults", cfg)
	}
}
