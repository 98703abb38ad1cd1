package nuklear

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nuklear.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestSaveLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nuklear.toml")
	cfg := DefaultConfig()
	cfg.MaxFonts = 16
	cfg.Stacks.Color = 8
	cfg.Debug = true
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got != cfg {
		t.Errorf("LoadConfig() = %+v, want %+v", got, cfg)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nuklear.toml")
	data := "max_images = 10\n\n[stacks]\nfont = 4\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.MaxImages != 10 || cfg.Stacks.Font != 4 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.MaxFonts != 1024 || cfg.Stacks.Color != 256 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero fonts", func(c *Config) { c.MaxFonts = 0 }, true},
		{"zero images", func(c *Config) { c.MaxImages = 0 }, true},
		{"negative stack", func(c *Config) { c.Stacks.Item = -1 }, true},
		{"zero stack", func(c *Config) { c.Stacks.Item = 0 }, false},
		{"no curve segments", func(c *Config) { c.CurveSegments = 0 }, true},
		{"two circle segments", func(c *Config) { c.CircleSegments = 2 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nuklear.toml")
	if err := os.WriteFile(path, []byte("max_fonts = -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() accepted max_fonts = -1")
	}
	if err := os.WriteFile(path, []byte("max_fonts = \n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() accepted malformed toml")
	}
}

func TestPlatformOf(t *testing.T) {
	tests := []struct {
		goos string
		want Platform
	}{
		{"darwin", PlatformMacOS},
		{"linux", PlatformLinux},
		{"windows", PlatformWindows},
		{"js", PlatformWeb},
		{"plan9", PlatformUnknown},
	}
	for _, tt := range tests {
		if got := platformOf(tt.goos); got != tt.want {
			t.Errorf("platformOf(%q) = %v, want %v", tt.goos, got, tt.want)
		}
	}
}
