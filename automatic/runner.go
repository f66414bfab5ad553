// Package automatic runs fills over many puzzle bundles at once. Each
// puzzle gets its own solver session, so puzzles run concurrently while
// every individual search stays sequential.
package automatic

import (
	"context"
	"encoding/binary"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"

	"github.com/David-Mais/crossfill/lexicon"
	"github.com/David-Mais/crossfill/puzzleio"
	"github.com/David-Mais/crossfill/render"
	"github.com/David-Mais/crossfill/solver"
)

// Result records the outcome of one puzzle in a batch.
type Result struct {
	Bundle  string  `yaml:"bundle"`
	Name    string  `yaml:"name,omitempty"`
	Solved  bool    `yaml:"solved"`
	Seconds float64 `yaml:"seconds"`
	Grid    string  `yaml:"grid,omitempty"`
	Error   string  `yaml:"error,omitempty"`
}

// BatchRunner fills a set of puzzle bundles on a fixed-size worker pool.
type BatchRunner struct {
	threads      int
	solveTimeout time.Duration
	shuffleSeed  uint64
}

func NewBatchRunner(threads int, solveTimeout time.Duration, shuffleSeed uint64) *BatchRunner {
	if threads < 1 {
		threads = 1
	}
	return &BatchRunner{threads: threads, solveTimeout: solveTimeout, shuffleSeed: shuffleSeed}
}

// Run solves every bundle and returns one Result per path, in input
// order. A bundle that fails to load or to solve is a Result, not an
// error; Run itself only fails if the context is cancelled.
func (r *BatchRunner) Run(ctx context.Context, paths []string) ([]Result, error) {
	jobs := make(chan int)
	results := make([]Result, len(paths))
	var mu sync.Mutex

	g := errgroup.Group{}
	for t := 0; t < r.threads; t++ {
		g.Go(func() error {
			for idx := range jobs {
				res := r.solveOne(ctx, paths[idx])
				mu.Lock()
				results[idx] = res
				mu.Unlock()
			}
			return nil
		})
	}

	for idx := range paths {
		if ctx.Err() != nil {
			close(jobs)
			_ = g.Wait()
			return nil, ctx.Err()
		}
		select {
		case jobs <- idx:
		case <-ctx.Done():
			close(jobs)
			_ = g.Wait()
			return nil, ctx.Err()
		}
	}
	close(jobs)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *BatchRunner) solveOne(ctx context.Context, path string) Result {
	res := Result{Bundle: path}
	start := time.Now()

	bundle, err := puzzleio.Load(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Name = bundle.Name
	cw, err := bundle.Crossword()
	if err != nil {
		res.Error = err.Error()
		return res
	}

	wanted := make(map[int]bool)
	for _, s := range cw.Slots() {
		wanted[s.Length] = true
	}
	words := lexicon.FilterLengths(bundle.Words, wanted)
	if r.shuffleSeed != 0 {
		words = shuffled(words, r.shuffleSeed)
	}

	if r.solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.solveTimeout)
		defer cancel()
	}

	assignment := solver.NewFiller(cw, words).Solve(ctx)
	res.Seconds = time.Since(start).Seconds()
	if assignment == nil {
		log.Info().Str("bundle", path).Msg("no fill found")
		return res
	}
	res.Solved = true
	res.Grid = render.Text(cw, assignment)
	log.Info().Str("bundle", path).Float64("seconds", res.Seconds).Msg("filled")
	return res
}

// shuffled returns a copy of words permuted by a seed-keyed generator, so
// the same seed reproduces the same fill order.
func shuffled(words []string, seed uint64) []string {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	rng := frand.NewCustom(key, 1024, 12)
	out := append([]string(nil), words...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// WriteLog writes batch results as a YAML stream to path.
func WriteLog(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	defer enc.Close()
	for i := range results {
		if err := enc.Encode(&results[i]); err != nil {
			return err
		}
	}
	return nil
}
