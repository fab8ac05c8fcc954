package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/example/mindfulaccess/internal/config"
	"github.com/example/mindfulaccess/internal/launcher"
	"github.com/example/mindfulaccess/internal/logging"
	"github.com/example/mindfulaccess/internal/menu"
)

func main() {
	log.SetFlags(0)

	rest, debug, err := parseGlobalFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}
	if len(rest) > 0 {
		log.Fatalf("unexpected arguments: %s", strings.Join(rest, " "))
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if debug || cfg.Debug {
		logging.EnableDebug()
	}

	bundle, err := launcher.ResolveBundlePath()
	if err != nil {
		log.Fatalf("failed to locate application bundle: %v", err)
	}
	logging.Debugf("bundle path: %s", bundle)

	log.Println("MindfulAccess menu helper starting...")
	controller := menu.NewController(launcher.New(cfg, bundle))
	if err := controller.Run(context.Background()); err != nil {
		log.Fatalf("menu helper exited with error: %v", err)
	}
}

// parseGlobalFlags extracts the flags the helper understands and drops the
// process serial number argument launch services may append.
func parseGlobalFlags(args []string) ([]string, bool, error) {
	filtered := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(arg, "-psn_") {
			continue
		}
		filtered = append(filtered, arg)
	}

	fs := flag.NewFlagSet("mindfulaccess", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	debug := fs.Bool("debug", false, "enable verbose debug logging")
	fs.Bool("console", false, "keep the console window visible (Windows)")

	if err := fs.Parse(filtered); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, false, errors.New("usage: mindfulaccess [--debug] [--console]")
		}
		return nil, false, fmt.Errorf("parse flags: %w", err)
	}
	return fs.Args(), *debug, nil
}
