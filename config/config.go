// Package config loads sprite engine settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/plus3/spritelist/sprite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Frame    FrameConfig    `yaml:"frame"`
	Log      LogConfig      `yaml:"log"`
}

type RegistryConfig struct {
	// Capacity is the per-registry sprite limit; 0 means unbounded.
	Capacity int `yaml:"capacity"`
}

type FrameConfig struct {
	ShowSprites        bool           `yaml:"show_sprites"`
	ShowHitboxes       bool           `yaml:"show_hitboxes"`
	Debug              bool           `yaml:"debug"`
	Editor             bool           `yaml:"editor"`
	BSZ                bool           `yaml:"bsz"`
	PlayingFieldOffset int            `yaml:"playing_field_offset"`
	SpawnWeapon        int            `yaml:"spawn_weapon"`
	ShadowWeapon       int            `yaml:"shadow_weapon"`
	Weapons            []WeaponConfig `yaml:"weapons"`
}

type WeaponConfig struct {
	Tile  int `yaml:"tile"`
	CSets int `yaml:"csets"`
	Misc  int `yaml:"misc"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Encoding    string `yaml:"encoding"`
	Development bool   `yaml:"development"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Registry: RegistryConfig{Capacity: sprite.DefaultCapacity},
		Frame: FrameConfig{
			ShowSprites:        true,
			PlayingFieldOffset: 56,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads and validates the file at path. Keys missing from the file keep
// their Default values.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Registry.Capacity < 0 {
		return fmt.Errorf("%w: registry.capacity %d is negative", ErrInvalidConfig, c.Registry.Capacity)
	}
	if c.Frame.PlayingFieldOffset < 0 {
		return fmt.Errorf("%w: frame.playing_field_offset %d is negative", ErrInvalidConfig, c.Frame.PlayingFieldOffset)
	}
	if err := c.checkWeapon("frame.spawn_weapon", c.Frame.SpawnWeapon); err != nil {
		return err
	}
	if err := c.checkWeapon("frame.shadow_weapon", c.Frame.ShadowWeapon); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.encoding %q", ErrInvalidConfig, c.Log.Encoding)
	}
	return nil
}

// A weapon index must point into the table, unless the table is empty.
func (c Config) checkWeapon(field string, i int) error {
	if i < 0 || (len(c.Frame.Weapons) > 0 && i >= len(c.Frame.Weapons)) {
		return fmt.Errorf("%w: %s %d outside weapon table of %d", ErrInvalidConfig, field, i, len(c.Frame.Weapons))
	}
	return nil
}

// Frame builds the frame state described by the config.
func (c Config) Frame() *sprite.Frame {
	f := sprite.NewFrame()
	f.ShowSprites = c.Frame.ShowSprites
	f.ShowHitboxes = c.Frame.ShowHitboxes
	f.Debug = c.Frame.Debug
	f.Editor = c.Frame.Editor
	f.BSZ = c.Frame.BSZ
	f.PlayingFieldOffset = c.Frame.PlayingFieldOffset
	f.SpawnWeapon = c.Frame.SpawnWeapon
	f.ShadowWeapon = c.Frame.ShadowWeapon
	for _, w := range c.Frame.Weapons {
		f.Weapons = append(f.Weapons, sprite.WeaponSprite{Tile: w.Tile, CSets: w.CSets, Misc: w.Misc})
	}
	return f
}

// RegistryOptions returns the options for a registry sharing frame and logger.
func (c Config) RegistryOptions(frame *sprite.Frame, logger *zap.Logger) []sprite.Option {
	opts := []sprite.Option{sprite.WithCapacity(c.Registry.Capacity)}
	if frame != nil {
		opts = append(opts, sprite.WithFrame(frame))
	}
	if logger != nil {
		opts = append(opts, sprite.WithLogger(logger))
	}
	return opts
}

// Logger builds a zap logger from the log section.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if c.Log.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      c.Log.Development,
		Encoding:         c.Log.Encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}
