package config

import (
	"errors"
	"flag"
	"fmt"
)

// Default values for configuration
const (
	DefaultFPS    = 60
	MaxFPS        = 240
	DefaultLogDir = "logs"
)

// Config holds the application configuration
type Config struct {
	FPS    int
	Mute   bool
	Debug  bool
	LogDir string
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pingpong", flag.ContinueOnError)

	fps := fs.Int("fps", DefaultFPS, "frames per second (1-240)")
	mute := fs.Bool("mute", false, "disable sound")
	debug := fs.Bool("debug", false, "write a debug log")
	logDir := fs.String("log-dir", DefaultLogDir, "directory for the debug log")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Validate frame rate
	if *fps < 1 || *fps > MaxFPS {
		return nil, fmt.Errorf("fps must be between 1 and %d, got %d", MaxFPS, *fps)
	}

	if *debug && *logDir == "" {
		return nil, errors.New("--log-dir cannot be empty when --debug is set")
	}

	cfg := &Config{
		FPS:    *fps,
		Mute:   *mute,
		Debug:  *debug,
		LogDir: *logDir,
	}

	return cfg, nil
}
