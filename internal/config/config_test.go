package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// fakeBinder wraps a pflag.FlagSet to satisfy the flagBinder interface.
type fakeBinder struct {
	fs *pflag.FlagSet
}

func (f *fakeBinder) Flags() *pflag.FlagSet { return f.fs }

func newFlagBinder(defaults Config) *fakeBinder {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	return &fakeBinder{fs: fs}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Paths.ClipsDir != "voice/clips" {
		t.Errorf("ClipsDir = %q; want %q", cfg.Paths.ClipsDir, "voice/clips")
	}

	if cfg.Voice.ShortPause != 0.05 {
		t.Errorf("Voice.ShortPause = %v; want 0.05", cfg.Voice.ShortPause)
	}

	if cfg.Voice.LongPause != 0.6 {
		t.Errorf("Voice.LongPause = %v; want 0.6", cfg.Voice.LongPause)
	}

	if cfg.Voice.SpeedJitter != 0.1 {
		t.Errorf("Voice.SpeedJitter = %v; want 0.1", cfg.Voice.SpeedJitter)
	}

	if cfg.Voice.Seed != 0 {
		t.Errorf("Voice.Seed = %d; want 0", cfg.Voice.Seed)
	}

	if cfg.Script.City != "De Bilt" {
		t.Errorf("Script.City = %q; want %q", cfg.Script.City, "De Bilt")
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "info")
	}
}

func TestRegisterFlags(t *testing.T) {
	defaults := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	checks := []struct {
		flag string
		want string
	}{
		{"paths-clips-dir", "voice/clips"},
		{"voice-short-pause", "0.05"},
		{"voice-long-pause", "0.6"},
		{"voice-speed-jitter", "0.1"},
		{"script-city", "De Bilt"},
		{"log-level", "info"},
	}

	for _, c := range checks {
		f := fs.Lookup(c.flag)
		if f == nil {
			t.Errorf("flag %q not registered", c.flag)
			continue
		}

		if f.DefValue != c.want {
			t.Errorf("flag %q default = %q; want %q", c.flag, f.DefValue, c.want)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	defaults := DefaultConfig()
	binder := newFlagBinder(defaults)

	cfg, err := Load(LoadOptions{
		Cmd:      binder,
		Defaults: defaults,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.ClipsDir != defaults.Paths.ClipsDir {
		t.Errorf("ClipsDir = %q; want %q", cfg.Paths.ClipsDir, defaults.Paths.ClipsDir)
	}

	if cfg.Voice.LongPause != defaults.Voice.LongPause {
		t.Errorf("Voice.LongPause = %v; want %v", cfg.Voice.LongPause, defaults.Voice.LongPause)
	}

	if cfg.LogLevel != defaults.LogLevel {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, defaults.LogLevel)
	}
}

func TestLoad_FlagOverride(t *testing.T) {
	defaults := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, defaults)

	err := fs.Parse([]string{
		"--voice-long-pause=0.8",
		"--script-city=Utrecht",
		"--log-level=debug",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := Load(LoadOptions{
		Cmd:      &fakeBinder{fs: fs},
		Defaults: defaults,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Voice.LongPause != 0.8 {
		t.Errorf("Voice.LongPause = %v; want 0.8", cfg.Voice.LongPause)
	}

	if cfg.Script.City != "Utrecht" {
		t.Errorf("Script.City = %q; want %q", cfg.Script.City, "Utrecht")
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "debug")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GIBBERCAST_SCRIPT_CITY", "Groningen")
	t.Setenv("GIBBERCAST_LOG_LEVEL", "warn")

	cfg, err := Load(LoadOptions{Defaults: DefaultConfig()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Script.City != "Groningen" {
		t.Errorf("Script.City = %q; want %q", cfg.Script.City, "Groningen")
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q; want %q", cfg.LogLevel, "warn")
	}
}

func TestLoad_ConfigFileExists_NoError(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "gibbercast.yaml")

	err := os.WriteFile(cfgFile, []byte("log_level: warn\n"), 0o644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(LoadOptions{
		ConfigFile: cfgFile,
		Defaults:   DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	_ = cfg
}

func TestLoad_InvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "bad.yaml")

	err := os.WriteFile(cfgFile, []byte(":\t:bad yaml:::"), 0o644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err = Load(LoadOptions{
		ConfigFile: cfgFile,
		Defaults:   DefaultConfig(),
	})
	if err == nil {
		t.Error("Load() = nil; want error for invalid config file")
	}
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	_, err := Load(LoadOptions{
		ConfigFile: "/nonexistent/path/gibbercast.yaml",
		Defaults:   DefaultConfig(),
	})
	if err == nil {
		t.Error("Load() = nil; want error for missing explicit config file")
	}
}
