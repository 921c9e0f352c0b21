// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvfractal/internal/config"
	"github.com/katalvlaran/lvfractal/internal/logging"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// command computes a JSON payload and a human summary from a resolved config.
type command struct {
	usage string
	flags func(fs *flagSet)
	exec  func(env *runEnv) (any, error)
}

// runEnv is handed to a command.
type runEnv struct {
	cfg     config.Config
	log     *zap.Logger
	fs      *flagSet
	summary *summary
}

var commands = map[string]command{
	"transforms": transformsCommand,
	"menger":     mengerCommand,
	"positions":  positionsCommand,
	"features":   featuresCommand,
	"curve":      curveCommand,
	"stats":      statsCommand,
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}
	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "fractalgen: unknown command %q\n", name)
		printUsage(stderr)
		return exitUsage
	}

	fs := newFlagSet(name, stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	envPath := fs.String("env", ".env", ".env file merged into the environment")
	outPath := fs.String("out", "", "output file (default stdout)")
	logFlags(fs)
	if cmd.flags != nil {
		cmd.flags(fs)
	}
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := resolveConfig(*configPath, *envPath, fs)
	if err != nil {
		fmt.Fprintf(stderr, "fractalgen %s: %v\n", name, err)
		return exitError
	}
	if *outPath != "" {
		cfg.Output.Path = *outPath
	}

	log := logging.New(cfg.Log, stderr).With(
		zap.String("run_id", uuid.NewString()),
		zap.String("command", name),
	)
	defer func() { _ = log.Sync() }()

	start := time.Now()
	env := &runEnv{cfg: cfg, log: log, fs: fs, summary: newSummary(name)}
	payload, err := cmd.exec(env)
	if err != nil {
		log.Error("command failed", zap.Error(err))
		return exitError
	}
	if err := writeJSON(payload, cfg.Output, stdout); err != nil {
		log.Error("write output", zap.Error(err))
		return exitError
	}
	log.Info("run finished", zap.Duration("elapsed", time.Since(start)))

	env.summary.print(stderr)
	return exitOK
}

// resolveConfig applies defaults, YAML, .env, LVFRACTAL_* and flags in order.
func resolveConfig(path, envPath string, fs *flagSet) (config.Config, error) {
	cfg := config.Default()
	var err error
	if path != "" {
		if cfg, err = config.Load(path, cfg); err != nil {
			return cfg, err
		}
	}
	if envPath != "" {
		if err = config.LoadEnvFile(envPath); err != nil {
			return cfg, err
		}
	}
	if cfg, err = config.ApplyEnv(cfg); err != nil {
		return cfg, err
	}
	return fs.apply(cfg)
}

func writeJSON(v any, out config.Output, stdout io.Writer) (err error) {
	w := stdout
	if out.Path != "" {
		var f *os.File
		if f, err = os.Create(out.Path); err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	enc := json.NewEncoder(w)
	if out.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "usage: fractalgen <command> [flags]")
	fmt.Fprintln(w, "commands:")
	for _, n := range names {
		fmt.Fprintf(w, "  %-11s %s\n", n, commands[n].usage)
	}
}
