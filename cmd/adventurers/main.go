// Adventurers is a tile-based exploration game driven by composable quests.
// Usage: adventurers [--version] [--plain] [--script <file>] [--trace] [--config <file>] <map> [quest]
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nathoo/adventurers/cli"
	"github.com/nathoo/adventurers/config"
	"github.com/nathoo/adventurers/engine"
	"github.com/nathoo/adventurers/loader"
	"github.com/nathoo/adventurers/tui"
	"github.com/nathoo/adventurers/types"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: adventurers [--version] [--plain] [--script <file>] [--trace] [--config <file>] <map> [quest]\n"

func main() {
	plain := false
	trace := false
	var scriptFile string
	configFile := os.Getenv("ADVENTURERS_CONFIG")
	var positional []string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("adventurers %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script", "--config":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s requires a file path\n", args[i])
				os.Exit(1)
			}
			if args[i] == "--script" {
				scriptFile = args[i+1]
			} else {
				configFile = args[i+1]
			}
			i++
		default:
			positional = append(positional, args[i])
		}
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	// Positional arguments win over config.
	if len(positional) > 0 {
		cfg.Map = positional[0]
	}
	if len(positional) > 1 {
		cfg.Quest = positional[1]
	}
	if cfg.Map == "" {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	log, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	b, err := loader.Load(cfg.Map)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading map: %v\n", err)
		os.Exit(1)
	}
	fields := logrus.Fields{"map": cfg.Map, "cells": b.Len()}
	b.Each(func(_ types.Coordinate, blk types.Block) {
		k := strings.ToLower(blk.Kind.String())
		n, _ := fields[k].(int)
		fields[k] = n + 1
	})
	log.WithFields(fields).Info("map loaded")

	opts := []engine.Option{engine.WithLogger(log)}
	eng := engine.New(b, cfg.Quest, opts...)
	mapName := strings.TrimSuffix(filepath.Base(cfg.Map), filepath.Ext(cfg.Map))

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := newCLI(eng, mapName, cfg, opts)
		c.In = f
		c.EchoInput = true
		c.Trace = trace
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		c := newCLI(eng, mapName, cfg, opts)
		c.Trace = trace
		c.Run()
		return
	}

	m := tui.New(eng, mapName, opts...).WithSaveDir(cfg.SaveDir)
	if err := tui.Run(m); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCLI(eng *engine.Engine, mapName string, cfg *config.Config, opts []engine.Option) *cli.CLI {
	c := cli.New(eng, mapName)
	c.SaveDir = cfg.SaveDir
	c.Options = opts
	return c
}

// newLogger builds the session logger. Without a log file everything is
// discarded, since stdout belongs to the game.
func newLogger(lc config.LogConfig) (*logrus.Logger, func(), error) {
	log := logrus.New()
	if lc.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(level)

	if lc.File == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}
	f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(f)
	return log, func() { f.Close() }, nil
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
