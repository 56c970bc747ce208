// Package main implements combine, the two-word variant of wordcombo.
//
// It asks for two words and writes every distinct arrangement of 1 up to
// max(len(word1), len(word2)) of their pooled, lower-cased letters:
//
//	combine
//	combine as an
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
	"github.com/charmbracelet/log"
)

const Version = "1.0.0"

func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to config.toml (default: user config dir)")
	output := flag.String("o", "", "Report file (default from config)")
	prefix := flag.String("prefix", "", "Only list combinations starting with this prefix")
	parallel := flag.Bool("parallel", false, "Enumerate lengths in parallel")
	caseFold := flag.String("case", "", "Letter case: mode, lower or upper")
	showVersion := flag.Bool("version", false, "Show current version")

	flag.Parse()

	if *showVersion {
		fmt.Printf("combine %s\n", Version)
		os.Exit(0)
	}

	logger.Setup("combine", *debugMode)

	cfg, _, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(flag.CommandLine, cfg, *output, *parallel, *caseFold)

	var in cli.LineReader
	if flag.NArg() > 0 {
		in = cli.NewStaticReader(flag.Args()...)
	} else if in, err = cli.NewReadlineReader(); err != nil {
		log.Fatalf("Failed to open terminal input: %v", err)
	}
	defer in.Close()

	log.Debug("Input info:", "output", cfg.Output.File, "parallel", cfg.Enumerate.Parallel, "prefix", *prefix)

	session := cli.NewSession(in, logger.New(""), arrange.NewEngine(cfg.EngineOptions()...), cli.Options{
		Variant:       cli.VariantCombine,
		Prefix:        *prefix,
		OutputFile:    cfg.Output.File,
		WarnOrderings: cfg.Enumerate.WarnOrderings,
	})
	if _, err := session.Run(); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			in.Close()
			os.Exit(1)
		}
		log.Fatalf("CLI error: %v", err)
	}
}

// applyFlags copies explicitly passed flags over the config, so
// -parallel=false can turn off a parallel config.
func applyFlags(fs *flag.FlagSet, cfg *config.Config, output string, parallel bool, caseFold string) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output.File = output
		case "parallel":
			cfg.Enumerate.Parallel = parallel
		case "case":
			cfg.Enumerate.Case = caseFold
		}
	})
}
