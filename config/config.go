package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/mantis/consts"
	"github.com/ratel-online/mantis/mantis/color"
	"github.com/ratel-online/mantis/mantis/player"
)

const (
	EnvColors       = "MANTIS_COLORS"
	EnvPalette      = "MANTIS_PALETTE"
	EnvWinningScore = "MANTIS_WINNING_SCORE"
	EnvHumans       = "MANTIS_HUMANS"
	EnvBots         = "MANTIS_BOTS"
	EnvSeed         = "MANTIS_SEED"
	EnvDelay        = "MANTIS_DELAY_MS"
)

type Config struct {
	Colors int
	// Palette names the exact colors in play and overrides Colors when set.
	Palette      []color.Color
	WinningScore int
	Humans       int
	Bots         int
	// Seed 0 picks a time based seed when the game is set up.
	Seed  int64
	Delay time.Duration
}

func Default() Config {
	return Config{
		Colors:       consts.DefaultColors,
		WinningScore: consts.DefaultWinningScore,
		Humans:       consts.DefaultHumans,
		Bots:         consts.DefaultBots,
		Delay:        time.Second,
	}
}

// Load starts from Default, applies the given dotenv files (".env" when none
// is named) and then the process environment, which wins over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	values := map[string]string{}
	for _, file := range files {
		read, err := godotenv.Read(file)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, consts.ErrorsInvalidConfiguration.With("reading %s: %v", file, err)
		}
		for k, v := range read {
			values[k] = v
		}
		log.Infof("loaded settings from %s\n", file)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}

	cfg := Default()
	var err error
	if cfg.Colors, err = intSetting(lookup, EnvColors, cfg.Colors); err != nil {
		return Config{}, err
	}
	if cfg.Palette, err = paletteSetting(lookup, EnvPalette); err != nil {
		return Config{}, err
	}
	if cfg.WinningScore, err = intSetting(lookup, EnvWinningScore, cfg.WinningScore); err != nil {
		return Config{}, err
	}
	if cfg.Humans, err = intSetting(lookup, EnvHumans, cfg.Humans); err != nil {
		return Config{}, err
	}
	if cfg.Bots, err = intSetting(lookup, EnvBots, cfg.Bots); err != nil {
		return Config{}, err
	}
	seed, err := intSetting(lookup, EnvSeed, 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)
	delay, err := intSetting(lookup, EnvDelay, int(cfg.Delay/time.Millisecond))
	if err != nil {
		return Config{}, err
	}
	cfg.Delay = time.Duration(delay) * time.Millisecond
	return cfg, cfg.Validate()
}

func intSetting(lookup func(string) (string, bool), key string, fallback int) (int, error) {
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, consts.ErrorsInvalidConfiguration.With("%s=%q is not a number", key, raw)
	}
	return v, nil
}

// paletteSetting parses a comma separated list of color names.
func paletteSetting(lookup func(string) (string, bool), key string) ([]color.Color, error) {
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var palette []color.Color
	for _, name := range strings.Split(raw, ",") {
		c, err := color.ByName(name)
		if err != nil {
			return nil, consts.ErrorsInvalidConfiguration.With("%s: %v", key, err)
		}
		palette = append(palette, c)
	}
	return palette, nil
}

// ColorSet is the universe of colors a game set up from c plays with.
func (c Config) ColorSet() (color.Set, error) {
	if len(c.Palette) > 0 {
		return color.NewSet(c.Palette...)
	}
	return color.FirstN(c.Colors)
}

// Validate rejects color universes outside [3, 7], non-positive winning scores
// and line-ups that leave a player without an opponent.
func (c Config) Validate() error {
	if _, err := c.ColorSet(); err != nil {
		return err
	}
	if c.WinningScore <= 0 {
		return consts.ErrorsInvalidConfiguration.With("winning score must be positive, got %d", c.WinningScore)
	}
	if c.Humans < 0 || c.Bots < 0 {
		return consts.ErrorsInvalidConfiguration.With("participant counts must not be negative")
	}
	if c.Humans > consts.MaxHumans {
		return consts.ErrorsInvalidConfiguration.With("at most %d humans, got %d", consts.MaxHumans, c.Humans)
	}
	if c.Bots > player.MaxBots {
		return consts.ErrorsInvalidConfiguration.With("at most %d bots, got %d", player.MaxBots, c.Bots)
	}
	if c.Humans+c.Bots < 2 {
		return consts.ErrorsInvalidConfiguration.With("need at least 2 participants, got %d human(s) and %d bot(s)", c.Humans, c.Bots)
	}
	if c.Delay < 0 {
		return consts.ErrorsInvalidConfiguration.With("delay must not be negative")
	}
	return nil
}
