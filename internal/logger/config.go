package logger

import "github.com/rs/zerolog"

// LoggerConfig holds the resolved logger setup derived from config.LogConfig.
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableConsole bool
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int
}

// LogFormat selects between the two supported output encodings.
type LogFormat int

const (
	FormatJSON LogFormat = iota
	FormatConsole
)

func (lf LogFormat) String() string {
	if lf == FormatJSON {
		return "json"
	}
	return "console"
}

// DefaultLoggerConfig returns the console setup used when no config is given.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:         zerolog.InfoLevel,
		Format:        FormatConsole,
		EnableConsole: true,
		EnableFile:    false,
		MaxSizeMB:     100,
		MaxBackups:    3,
	}
}
