package lib

import (
	"log/slog"

	"github.com/dbsteward/erdconvert/lib/format"
)

// Config is a structure containing all configuration information
// for any execution of code.
type Config struct {
	Logger *slog.Logger
	Format format.Format
	// Strict fails a conversion on an unterminated table
	Strict bool
	// Validate checks all tables before anything is rendered
	Validate bool
}

func (self *Config) logger() *slog.Logger {
	if self.Logger == nil {
		return slog.Default()
	}
	return self.Logger
}
