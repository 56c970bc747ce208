/*
Package main implements wordcombo, which writes every unique letter arrangement
of one or two words into a numbered text report.

# Usage

Run interactively and pick a mode at the prompt:

	wordcombo

Answer the prompts from the command line instead:

	wordcombo -m 1 as an
	wordcombo -m 2 dug
	wordcombo 2 dug

Without -m the first argument is the mode selector, and must be exactly 1 or
2. The cli.default_mode config value only skips the interactive prompt.

# Modes

Mode 1 (combination) takes two words, pools their letters, and lists every
distinct arrangement of 1 up to max(len(word1), len(word2)) letters. Letters are
lower-cased.

Mode 2 (permutation) takes one word and lists every distinct arrangement of all
of its letters. Letters are upper-cased.

Repeated letters are honored: "AAB" gives AAB, ABA and BAA, not six results.
The work grows factorially with the number of letters; above
enumerate.warn_orderings raw orderings a warning is logged first.

# Report

Results go to word_combinations.txt in the working directory (see -o), which is
overwritten on every run. A write failure is reported and the process still
exits normally. Missing words or an invalid mode exit with status 1.

# Server Mode

With -s the engine is served over msgpack on stdin/stdout, see package server:

	{"id": "r1", "action": "enumerate", "m": 2, "w": ["dug"]}

# Configuration

A TOML file is created with defaults in the user config dir when missing:

	[output]
	file = "word_combinations.txt"

	[enumerate]
	parallel = false
	case = "mode"
	warn_orderings = 50000000

	[server]
	max_letters = 12
	max_limit = 0

	[cli]
	default_mode = ""

Flags override the file.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordcombo/internal/cli"
	"github.com/bastiangx/wordcombo/internal/logger"
	"github.com/bastiangx/wordcombo/pkg/arrange"
	"github.com/bastiangx/wordcombo/pkg/config"
	"github.com/bastiangx/wordcombo/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "1.0.0"
	AppName = "wordcombo"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, engine and either the prompt session or the IPC server.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serverMode := flag.Bool("s", false, "Serve msgpack requests on stdin/stdout")
	configPath := flag.String("config", "", "Path to config.toml (default: user config dir)")
	output := flag.String("o", "", "Report file (default from config)")
	mode := flag.String("m", "", "Mode: 1 = combination (2 words), 2 = permutation (1 word)")
	prefix := flag.String("prefix", "", "Only list arrangements starting with this prefix")
	parallel := flag.Bool("parallel", false, "Enumerate lengths in parallel")
	caseFold := flag.String("case", "", "Letter case: mode, lower or upper")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.Setup(AppName, *debugMode)

	cfg, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", usedPath)

	modeSet := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output.File = *output
		case "m":
			modeSet = true
		case "parallel":
			cfg.Enumerate.Parallel = *parallel
		case "case":
			cfg.Enumerate.Case = *caseFold
		}
	})

	engine := arrange.NewEngine(cfg.EngineOptions()...)

	if *serverMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(engine,
			server.WithMaxLetters(cfg.Server.MaxLetters),
			server.WithMaxLimit(cfg.Server.MaxLimit))
		if err := srv.Start(); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
		return
	}

	sigHandler()
	in, err := inputFor(flag.Args())
	if err != nil {
		log.Fatalf("Failed to open terminal input: %v", err)
	}
	defer in.Close()

	session := cli.NewSession(in, logger.New(""), engine, cli.Options{
		Variant:       cli.VariantModes,
		Mode:          presetMode(*mode, modeSet, cfg.CLI.DefaultMode, flag.Args()),
		Prefix:        *prefix,
		OutputFile:    cfg.Output.File,
		WarnOrderings: cfg.Enumerate.WarnOrderings,
	})
	if _, err := session.Run(); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			log.Debugf("Usage error: %v", err)
			in.Close()
			os.Exit(1)
		}
		log.Fatalf("wordcombo: %v", err)
	}
}

// presetMode picks the mode that skips the prompt. -m always wins; the
// configured default only applies when no arguments answer the prompts, so
// the first argument stays the mode selector.
func presetMode(flagMode string, flagSet bool, configMode string, args []string) string {
	if flagSet {
		return flagMode
	}
	if len(args) > 0 {
		return ""
	}
	return configMode
}

// inputFor answers prompts from args when given, else from the terminal.
func inputFor(args []string) (cli.LineReader, error) {
	if len(args) > 0 {
		return cli.NewStaticReader(args...), nil
	}
	return cli.NewReadlineReader()
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ wordcombo ] Every arrangement of your letters")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
}
