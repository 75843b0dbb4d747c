package engine

// Options fixes the engine configuration at construction time. BoardSize is
// immutable for the lifetime of the engine instance.
type Options struct {
	BoardSize        int     `json:"board_size"`
	MaxSearchDepth   int     `json:"max_search_depth"`
	TimeLimitMs      int     `json:"time_limit_ms"`
	CacheCap         int     `json:"cache_cap"`
	VCFDepthSelf     int     `json:"vcf_depth_self"`
	VCFDepthOpponent int     `json:"vcf_depth_opponent"`
	Weights          Weights `json:"weights"`
}

// Weights scores the canonical line shapes. Five must stay the largest by a
// wide margin: the search layer treats it as decisive.
type Weights struct {
	Five      float64 `json:"five"`
	OpenFour  float64 `json:"open_four"`
	DeadFour  float64 `json:"dead_four"`
	OpenThree float64 `json:"open_three"`
	DeadThree float64 `json:"dead_three"`
	OpenTwo   float64 `json:"open_two"`
	DeadTwo   float64 `json:"dead_two"`

	// Per-stone bonus for a contiguous run, scaled by how many run ends
	// are open.
	RunBothOpen float64 `json:"run_both_open"`
	RunOneOpen  float64 `json:"run_one_open"`

	// Positional weight multiplier, higher toward the board center.
	Center float64 `json:"center"`

	// Move ordering: an opponent evaluation at or above DefenseThreshold
	// marks the cell as defensively valuable and adds the opponent score
	// scaled by DefenseScale.
	DefenseThreshold float64 `json:"defense_threshold"`
	DefenseScale     float64 `json:"defense_scale"`
}

func DefaultOptions() Options {
	return Options{
		BoardSize:      15,
		MaxSearchDepth: 6,
		TimeLimitMs:    1000,

		// Coarse eviction: the whole cache is dropped past the cap.
		CacheCap: 200_000,

		VCFDepthSelf:     10,
		VCFDepthOpponent: 8,

		Weights: Weights{
			Five:      10_000_000.0,
			OpenFour:  1_000_000.0,
			DeadFour:  100_000.0,
			OpenThree: 10_000.0,
			DeadThree: 1_000.0,
			OpenTwo:   100.0,
			DeadTwo:   10.0,

			RunBothOpen: 8.0,
			RunOneOpen:  3.0,

			Center: 2.0,

			DefenseThreshold: 100_000.0,
			DefenseScale:     1.0,
		},
	}
}

func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.BoardSize == 0 {
		o.BoardSize = defaults.BoardSize
	}
	if o.MaxSearchDepth <= 0 {
		o.MaxSearchDepth = defaults.MaxSearchDepth
	}
	if o.TimeLimitMs <= 0 {
		o.TimeLimitMs = defaults.TimeLimitMs
	}
	if o.CacheCap <= 0 {
		o.CacheCap = defaults.CacheCap
	}
	if o.VCFDepthSelf <= 0 {
		o.VCFDepthSelf = defaults.VCFDepthSelf
	}
	if o.VCFDepthOpponent <= 0 {
		o.VCFDepthOpponent = defaults.VCFDepthOpponent
	}
	if o.Weights == (Weights{}) {
		o.Weights = defaults.Weights
	}
	return o
}
