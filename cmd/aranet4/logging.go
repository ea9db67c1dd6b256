package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/m1guelpf/aranet-go/aranet"
	"github.com/m1guelpf/aranet-go/internal/config"
)

// newLogger builds a logger from the --log-level and --verbose flags, with an
// optional fallback level from the config file. --log-level wins over
// --verbose, which wins over the config.
func newLogger(cmd *cobra.Command, configLevel string) (*logrus.Logger, error) {
	level := logrus.PanicLevel

	levelStr, _ := cmd.Flags().GetString("log-level")
	if levelStr == "" {
		levelStr = configLevel
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	switch {
	case levelStr != "":
		parsed, err := logrus.ParseLevel(levelStr)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", levelStr)
		}
		level = parsed
	case verbose:
		level = logrus.DebugLevel
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	return logger, nil
}

// loadOptions assembles discovery options from the config file and the
// command-line flags, and builds the logger to go with them.
func loadOptions(cmd *cobra.Command) (*aranet.Options, *logrus.Logger, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	logger, err := newLogger(cmd, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, nil, err
	}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		opts.SearchTimeout = timeout
	}
	opts.Logger = logger

	return opts, logger, nil
}
