package config

import (
	"time"

	"github.com/namsral/flag"
)

type Config struct {
	StructurePath string
	WordsPath     string
	BundlePath    string
	OutputPath    string
	Threads       int
	SolveTimeout  time.Duration
	ShuffleSeed   uint64
	Debug         bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("crossfill", flag.ContinueOnError)
	fs.StringVar(&c.StructurePath, "structure", "", "path to a structure file ('_' marks open cells)")
	fs.StringVar(&c.WordsPath, "words", "", "path to a word list, one word per line")
	fs.StringVar(&c.BundlePath, "bundle", "", "path to a YAML puzzle bundle, or a directory of bundles for batch mode")
	fs.StringVar(&c.OutputPath, "output", "", "where batch mode writes its YAML results log")
	fs.IntVar(&c.Threads, "threads", 4, "number of concurrent puzzles in batch mode")
	fs.DurationVar(&c.SolveTimeout, "solve-timeout", 0, "give up on a puzzle after this long (0 = no limit)")
	fs.Uint64Var(&c.ShuffleSeed, "shuffle-seed", 0, "shuffle each puzzle's vocabulary with this seed before solving (0 = keep sorted order)")
	fs.BoolVar(&c.Debug, "debug", false, "debug logging")
	err := fs.Parse(args)
	return err
}
