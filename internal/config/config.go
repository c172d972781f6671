package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/LoocasGoose/BetaGomoku/gomoku"
)

// Config is the server-side configuration. The search section is handed to
// the engine untouched; everything else is transport and operations.
type Config struct {
	Addr       string        `mapstructure:"addr"`
	LogLevel   string        `mapstructure:"log_level"`
	RecordsDir string        `mapstructure:"records_dir"`
	Search     gomoku.Config `mapstructure:"search"`
}

func Default() Config {
	return Config{
		Addr:       ":8080",
		LogLevel:   "info",
		RecordsDir: "records",
		Search:     gomoku.DefaultConfig(),
	}
}

// Load reads configuration from an optional file plus BETAGOMOKU_* env
// variables, layered over the defaults. An empty path skips the file.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("addr", def.Addr)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("records_dir", def.RecordsDir)
	v.SetDefault("search.depth", def.Search.Depth)
	v.SetDefault("search.max_candidates", def.Search.MaxCandidates)
	v.SetDefault("search.overline_wins", def.Search.OverlineWins)
	v.SetDefault("search.use_table", def.Search.UseTable)
	v.SetDefault("search.weights.five", def.Search.Weights.Five)
	v.SetDefault("search.weights.open_four", def.Search.Weights.OpenFour)
	v.SetDefault("search.weights.closed_four", def.Search.Weights.ClosedFour)
	v.SetDefault("search.weights.open_three", def.Search.Weights.OpenThree)
	v.SetDefault("search.weights.closed_three", def.Search.Weights.ClosedThree)
	v.SetDefault("search.weights.open_two", def.Search.Weights.OpenTwo)
	v.SetDefault("search.weights.closed_two", def.Search.Weights.ClosedTwo)

	v.SetEnvPrefix("BETAGOMOKU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
