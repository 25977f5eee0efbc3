package config

import "fmt"

// log levels, aligned with zapcore.Level values.
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (cfg Configuration) Validate() error {
	if cfg.Level < DEBUG_LEVEL || cfg.Level > ERROR_LEVEL {
		return fmt.Errorf("log level %d out of range [%d, %d]", cfg.Level, DEBUG_LEVEL, ERROR_LEVEL)
	}
	if cfg.TimeFormat == "" {
		return fmt.Errorf("log time format must not be empty")
	}
	return nil
}
