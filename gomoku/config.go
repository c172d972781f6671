package gomoku

// Search depth bounds. Depth 4 is already slow on a full-width middle game;
// deeper settings are clamped rather than rejected.
const (
	MinDepth     = 1
	MaxDepth     = 4
	DefaultDepth = 2

	DefaultMaxCandidates = 20
)

// Config tunes the search agent. The zero value is not meaningful; start
// from DefaultConfig and override fields.
type Config struct {
	Depth         int            `json:"depth" mapstructure:"depth"`
	MaxCandidates int            `json:"max_candidates" mapstructure:"max_candidates"`
	OverlineWins  bool           `json:"overline_wins" mapstructure:"overline_wins"`
	UseTable      bool           `json:"use_table" mapstructure:"use_table"`
	Weights       PatternWeights `json:"weights" mapstructure:"weights"`
}

func DefaultConfig() Config {
	return Config{
		Depth:         DefaultDepth,
		MaxCandidates: DefaultMaxCandidates,
		OverlineWins:  true,
		UseTable:      true,
		Weights:       DefaultWeights(),
	}
}

// normalize clamps out-of-range settings instead of failing; a zero Weights
// table is replaced with the defaults so a partially filled Config stays
// usable.
func (c *Config) normalize() {
	if c.Depth < MinDepth {
		c.Depth = MinDepth
	}
	if c.Depth > MaxDepth {
		c.Depth = MaxDepth
	}
	if c.MaxCandidates <= 0 {
		c.MaxCandidates = DefaultMaxCandidates
	}
	if c.Weights == (PatternWeights{}) {
		c.Weights = DefaultWeights()
	}
}
