package main

import (
	"bar-finder/internal/adapters/repositories"
	"bar-finder/internal/cli"
	"bar-finder/internal/config"
	"bar-finder/internal/domain"
	"bar-finder/internal/geo"
	"bar-finder/internal/platform/obs"
	"bar-finder/internal/services"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// main runs one interactive query session: load, query, print, exit.
// Results go to stdout; diagnostics go to stderr through zap.
func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("barfinder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	filePath := fs.String("file", "", "path to the venues JSON file (prompted when empty)")
	coords := fs.String("coords", "", `"longitude latitude" (prompted when empty)`)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	loaded, envErr := config.LoadEnv()

	logger, err := obs.NewLogger("barfinder", config.Get("LOG_LEVEL", "warn"), config.Get("LOG_FORMAT", "console"))
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()
	defer zap.ReplaceGlobals(logger)()

	if envErr != nil {
		logger.Warn("failed to load .env", zap.Error(envErr))
	} else if loaded {
		logger.Debug("loaded .env")
	}

	dist, err := geo.ByName(config.Get("DISTANCE_FORMULA", "haversine"))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	prompter := cli.NewPrompter(stdin, stdout)

	path := strings.TrimSpace(*filePath)
	if path == "" {
		if path, err = prompter.Ask(cli.PathPrompt); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		path = strings.TrimSpace(path)
	}

	venues, err := repositories.LoadVenues(path)
	if err != nil {
		logger.Debug("load venues failed", zap.String("path", path), zap.Error(err))
		if errors.Is(err, domain.ErrDataNotFound) {
			fmt.Fprintf(stdout, "No such file or directory: %s\n", path)
			return 1
		}
		fmt.Fprintf(stdout, "Cannot read venues from %s: %v\n", path, err)
		return 1
	}
	logger.Info("venues loaded", zap.String("path", path), zap.Int("count", len(venues)))

	input := *coords
	if strings.TrimSpace(input) == "" {
		if input, err = prompter.Ask(cli.CoordinatesPrompt); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	point, err := cli.ParseCoordinates(input)
	if err != nil {
		fmt.Fprintf(stdout, "Enter two numbers separated by a space, longitude first: %v\n", err)
		return 1
	}

	summary, err := services.Summarize(venues, point, dist)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCollection) {
			fmt.Fprintf(stdout, "No venues in %s\n", path)
			return 1
		}
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintln(stdout)
	if err := cli.PrintSummary(stdout, summary); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger.Debug("closest venue",
		zap.String("name", summary.Closest.Venue.Name),
		zap.Float64("distance_m", summary.Closest.DistanceMeters),
	)
	return 0
}
