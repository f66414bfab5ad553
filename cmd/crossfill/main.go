package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/David-Mais/crossfill/automatic"
	"github.com/David-Mais/crossfill/config"
	"github.com/David-Mais/crossfill/grid"
	"github.com/David-Mais/crossfill/lexicon"
	"github.com/David-Mais/crossfill/puzzleio"
	"github.com/David-Mais/crossfill/render"
	"github.com/David-Mais/crossfill/solver"
)

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.Debug)

	switch {
	case cfg.BundlePath != "":
		info, err := os.Stat(cfg.BundlePath)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot stat bundle path")
		}
		if info.IsDir() {
			runBatch(cfg)
		} else {
			solveBundle(cfg)
		}
	case cfg.StructurePath != "" && cfg.WordsPath != "":
		solveFiles(cfg)
	default:
		fmt.Fprintln(os.Stderr, "usage: crossfill -structure <file> -words <file>, or crossfill -bundle <file-or-dir>")
		os.Exit(2)
	}
}

func solveCtx(cfg *config.Config) (context.Context, context.CancelFunc) {
	if cfg.SolveTimeout > 0 {
		return context.WithTimeout(context.Background(), cfg.SolveTimeout)
	}
	return context.WithCancel(context.Background())
}

func printFill(cw *grid.Crossword, assignment solver.Assignment) {
	if assignment == nil {
		fmt.Println("No solution.")
		os.Exit(1)
	}
	fmt.Print(render.Text(cw, assignment))
}

func solveBundle(cfg *config.Config) {
	bundle, err := puzzleio.Load(cfg.BundlePath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load bundle")
	}
	cw, err := bundle.Crossword()
	if err != nil {
		log.Fatal().Err(err).Msg("bad structure")
	}
	words := lexicon.FilterLengths(bundle.Words, slotLengths(cw))
	ctx, cancel := solveCtx(cfg)
	defer cancel()
	printFill(cw, solver.NewFiller(cw, words).Solve(ctx))
}

func solveFiles(cfg *config.Config) {
	structure, err := grid.LoadStructure(cfg.StructurePath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load structure")
	}
	cw, err := grid.New(structure)
	if err != nil {
		log.Fatal().Err(err).Msg("bad structure")
	}
	words, err := lexicon.Load(cfg.WordsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load word list")
	}
	words = lexicon.FilterLengths(words, slotLengths(cw))
	ctx, cancel := solveCtx(cfg)
	defer cancel()
	printFill(cw, solver.NewFiller(cw, words).Solve(ctx))
}

// slotLengths collects the word lengths the grid can actually hold, so
// the vocabulary can be pruned before the domains are built.
func slotLengths(cw *grid.Crossword) map[int]bool {
	wanted := make(map[int]bool)
	for _, s := range cw.Slots() {
		wanted[s.Length] = true
	}
	return wanted
}

func runBatch(cfg *config.Config) {
	matches, err := filepath.Glob(filepath.Join(cfg.BundlePath, "*.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("cannot list bundles")
	}
	if len(matches) == 0 {
		log.Fatal().Str("dir", cfg.BundlePath).Msg("no bundles found")
	}
	sort.Strings(matches)

	runner := automatic.NewBatchRunner(cfg.Threads, cfg.SolveTimeout, cfg.ShuffleSeed)
	results, err := runner.Run(context.Background(), matches)
	if err != nil {
		log.Fatal().Err(err).Msg("batch run failed")
	}
	solved := 0
	for _, r := range results {
		if r.Solved {
			solved++
		}
	}
	log.Info().Int("solved", solved).Int("total", len(results)).Msg("batch done")
	if cfg.OutputPath != "" {
		if err := automatic.WriteLog(cfg.OutputPath, results); err != nil {
			log.Fatal().Err(err).Msg("cannot write results log")
		}
	}
}
