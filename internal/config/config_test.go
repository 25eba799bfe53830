package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.IntervalSeconds != 0 {
		t.Errorf("IntervalSeconds = %v, want 0", cfg.IntervalSeconds)
	}
	if cfg.DiskPath != defaultDiskPath() {
		t.Errorf("DiskPath = %q, want %q", cfg.DiskPath, defaultDiskPath())
	}
	if cfg.CPUWindowSeconds != 1.0 || cfg.NetWindowSeconds != 1.0 {
		t.Errorf("windows = %v/%v, want 1.0/1.0", cfg.CPUWindowSeconds, cfg.NetWindowSeconds)
	}
	if cfg.NoClear || cfg.NoContainers {
		t.Error("toggles should default to off")
	}
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := writeConfig(t, `
interval_seconds: 5
no_clear: true
disk_path: /var
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.IntervalSeconds != 5 {
		t.Errorf("IntervalSeconds = %v, want 5", cfg.IntervalSeconds)
	}
	if !cfg.NoClear {
		t.Error("NoClear = false, want true")
	}
	if cfg.DiskPath != "/var" {
		t.Errorf("DiskPath = %q, want %q", cfg.DiskPath, "/var")
	}
	// Untouched keys keep their defaults.
	if cfg.CPUWindowSeconds != 1.0 || cfg.NetWindowSeconds != 1.0 {
		t.Errorf("windows = %v/%v, want 1.0/1.0", cfg.CPUWindowSeconds, cfg.NetWindowSeconds)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "interval_seconds: [not a number\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}

func TestLoadNormalizesBadValues(t *testing.T) {
	path := writeConfig(t, `
interval_seconds: -3
cpu_window_seconds: 0
net_window_seconds: -1
disk_path: ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.IntervalSeconds != 0 {
		t.Errorf("IntervalSeconds = %v, want 0", cfg.IntervalSeconds)
	}
	if cfg.CPUWindowSeconds != 1.0 || cfg.NetWindowSeconds != 1.0 {
		t.Errorf("windows = %v/%v, want 1.0/1.0", cfg.CPUWindowSeconds, cfg.NetWindowSeconds)
	}
	if cfg.DiskPath != defaultDiskPath() {
		t.Errorf("DiskPath = %q, want %q", cfg.DiskPath, defaultDiskPath())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "disk_path: /var\ninterval_seconds: 5\n")
	t.Setenv("HOSTSNAP_DISK", "/srv")
	t.Setenv("HOSTSNAP_INTERVAL", "2.5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DiskPath != "/srv" {
		t.Errorf("DiskPath = %q, want %q", cfg.DiskPath, "/srv")
	}
	if cfg.IntervalSeconds != 2.5 {
		t.Errorf("IntervalSeconds = %v, want 2.5", cfg.IntervalSeconds)
	}
}

func TestEnvIgnoresBadInterval(t *testing.T) {
	path := writeConfig(t, "interval_seconds: 5\n")
	t.Setenv("HOSTSNAP_INTERVAL", "soon")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.IntervalSeconds != 5 {
		t.Errorf("IntervalSeconds = %v, want 5 from file", cfg.IntervalSeconds)
	}
}

func TestDefaultPathHonorsEnv(t *testing.T) {
	t.Setenv("HOSTSNAP_CONFIG", "/etc/hostsnap.yaml")
	if got := DefaultPath(); got != "/etc/hostsnap.yaml" {
		t.Errorf("DefaultPath() = %q, want %q", got, "/etc/hostsnap.yaml")
	}

	t.Setenv("HOSTSNAP_CONFIG", "")
	if got := DefaultPath(); got == "" || got == "/etc/hostsnap.yaml" {
		t.Errorf("DefaultPath() = %q, want home-relative fallback", got)
	}
}

func TestExclusionsOverlay(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantLoopback []string
		wantPrefixes []string
	}{
		{
			name:         "Absent Keys Keep Defaults",
			body:         "interval_seconds: 1\n",
			wantLoopback: nil, // nil means: expect built-in table
			wantPrefixes: nil,
		},
		{
			name:         "Explicit Lists Replace Table",
			body:         "uplink:\n  loopback: [lo9]\n  virtual_prefixes: [zz]\n",
			wantLoopback: []string{"lo9"},
			wantPrefixes: []string{"zz"},
		},
		{
			name:         "Empty List Clears One Side",
			body:         "uplink:\n  virtual_prefixes: []\n",
			wantLoopback: nil,
			wantPrefixes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.body))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			excl := cfg.Exclusions()

			if tt.wantLoopback == nil {
				if !excl.Excluded("lo") {
					t.Error("default loopback table should exclude lo")
				}
			} else if len(excl.Loopback) != len(tt.wantLoopback) || excl.Loopback[0] != tt.wantLoopback[0] {
				t.Errorf("Loopback = %v, want %v", excl.Loopback, tt.wantLoopback)
			}

			if tt.wantPrefixes == nil {
				if !excl.Excluded("docker0") {
					t.Error("default prefix table should exclude docker0")
				}
			} else if len(excl.VirtualPrefixes) != len(tt.wantPrefixes) {
				t.Errorf("VirtualPrefixes = %v, want %v", excl.VirtualPrefixes, tt.wantPrefixes)
			}
		})
	}
}
