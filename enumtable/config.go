package enumtable

import "go.uber.org/zap"

// Strategy selects the representation of a table.
type Strategy int

const (
	// StrategyAuto picks the dense array when the domain allows it.
	StrategyAuto Strategy = iota

	// StrategySparse always builds the lazily memoizing map, even for dense-eligible
	// domains. Both strategies return identical results for every key.
	StrategySparse
)

func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategySparse:
		return "sparse"
	default:
		return "unknown"
	}
}

type Config struct {
	Strategy Strategy    // default: StrategyAuto
	Logger   *zap.Logger // default: the package logger
}

func NewConfig(strategy Strategy, logger *zap.Logger) Config {
	if strategy != StrategySparse {
		strategy = StrategyAuto
	}
	return Config{
		Strategy: strategy,
		Logger:   logger,
	}
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return currentLogger()
	}
	return c.Logger
}

// normalizeConfig accepts either 0 or 1 configs. Panics if more than one is passed.
func normalizeConfig(config []Config) Config {
	switch len(config) {
	case 1:
		return NewConfig(config[0].Strategy, config[0].Logger)
	case 0:
		return NewConfig(StrategyAuto, nil)
	default:
		panic("normalizeConfig: only one or zero configs allowed")
	}
}
