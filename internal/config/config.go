package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Paths    PathsConfig  `mapstructure:"paths"`
	Voice    VoiceConfig  `mapstructure:"voice"`
	Script   ScriptConfig `mapstructure:"script"`
	LogLevel string       `mapstructure:"log_level"`
}

type PathsConfig struct {
	ClipsDir string `mapstructure:"clips_dir"`
}

type VoiceConfig struct {
	ShortPause  float64 `mapstructure:"short_pause"`
	LongPause   float64 `mapstructure:"long_pause"`
	SpeedJitter float64 `mapstructure:"speed_jitter"`
	Seed        int64   `mapstructure:"seed"`
}

type ScriptConfig struct {
	City string `mapstructure:"city"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			ClipsDir: "voice/clips",
		},
		Voice: VoiceConfig{
			ShortPause:  0.05,
			LongPause:   0.6,
			SpeedJitter: 0.1,
			Seed:        0,
		},
		Script: ScriptConfig{
			City: "De Bilt",
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("paths-clips-dir", defaults.Paths.ClipsDir, "Directory holding the voice clip WAV files")
	fs.Float64("voice-short-pause", defaults.Voice.ShortPause, "Pause in seconds inserted per whitespace token")
	fs.Float64("voice-long-pause", defaults.Voice.LongPause, "Pause in seconds added after sentence-ending punctuation")
	fs.Float64("voice-speed-jitter", defaults.Voice.SpeedJitter, "Playback-speed spread per clip (0 disables)")
	fs.Int64("voice-seed", defaults.Voice.Seed, "Random seed for clip choice and jitter (0 = time-based)")
	fs.String("script-city", defaults.Script.City, "City name used in weather scripts")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("GIBBERCAST")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("gibbercast")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("paths.clips_dir", c.Paths.ClipsDir)
	v.SetDefault("voice.short_pause", c.Voice.ShortPause)
	v.SetDefault("voice.long_pause", c.Voice.LongPause)
	v.SetDefault("voice.speed_jitter", c.Voice.SpeedJitter)
	v.SetDefault("voice.seed", c.Voice.Seed)
	v.SetDefault("script.city", c.Script.City)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("paths.clips_dir", "paths-clips-dir")
	v.RegisterAlias("voice.short_pause", "voice-short-pause")
	v.RegisterAlias("voice.long_pause", "voice-long-pause")
	v.RegisterAlias("voice.speed_jitter", "voice-speed-jitter")
	v.RegisterAlias("voice.seed", "voice-seed")
	v.RegisterAlias("script.city", "script-city")
	v.RegisterAlias("log_level", "log-level")
}
