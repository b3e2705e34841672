package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type Config struct {
	// LogLevel is one of debug, info, warn, error or off.
	LogLevel string `yaml:"log-level" env-default:"info"`
	LogFile  string `yaml:"log-file" env-default:"connectfour.log"`
	Board    Board  `yaml:"board"`
	UI       UI     `yaml:"ui"`
}

type Board struct {
	// Preset skips the size menu when set.
	Preset string `yaml:"preset" env-default:""`
}

type UI struct {
	DisableMouse   bool   `yaml:"disable-mouse"`
	Inline         bool   `yaml:"inline"`
	PlayerOneColor string `yaml:"player-one-color" env-default:"#E8453C"`
	PlayerTwoColor string `yaml:"player-two-color" env-default:"#F2C300"`
}

// MustLoad - load all configurations in config.yml file. A missing file means defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// no env names are declared, so this only applies env-default values
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("apply defaults: %w", err)
		}
	default:
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if _, _, err = config.Board.GetPreset(); err != nil {
		return nil, err
	}

	return config, nil
}

// GetPreset - returns the configured preset; ok is false when the player should choose.
func (that *Board) GetPreset() (entity.Preset, bool, error) {
	if that.Preset == "" {
		return entity.Preset{}, false, nil
	}

	preset, err := entity.PresetByName(that.Preset)
	if err != nil {
		return entity.Preset{}, false, fmt.Errorf("board preset: %w", err)
	}

	return preset, true, nil
}
