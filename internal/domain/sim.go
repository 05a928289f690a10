package domain

import (
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/minefield/internal/model"
)

// SimArgs configures a batch simulation.
type SimArgs struct {
	Config  m.Config
	Mines   int
	Games   int
	Workers int
}

// SimResult aggregates the outcomes of a batch of games.
type SimResult struct {
	Games int
	Won   int
	Lost  int
	Turns int // total reveals issued across all games
}

// Simulate plays args.Games independent games with a reveal-only random
// policy and tallies the outcomes. Game i is seeded with Config.Seed+i,
// so a batch is reproducible regardless of worker count. Each game is
// single-threaded; only whole games run concurrently.
func Simulate(args SimArgs) (SimResult, error) {
	if args.Games <= 0 {
		return SimResult{}, nil
	}

	workers := args.Workers
	if workers <= 0 {
		workers = 1
	}

	var (
		mu     sync.Mutex
		result = SimResult{Games: args.Games}
	)

	var eg errgroup.Group

	eg.SetLimit(workers)

	for i := 0; i < args.Games; i++ {
		seed := args.Config.Seed + int64(i)

		eg.Go(func() error {
			state, turns := playRandom(args.Config, args.Mines, seed)

			mu.Lock()
			defer mu.Unlock()

			switch state {
			case m.Won:
				result.Won++
			case m.Lost:
				result.Lost++
			}

			result.Turns += turns

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return SimResult{}, err
	}

	return result, nil
}

// playRandom runs one game revealing uniformly random coordinates until
// the game ends or the turn cap is hit. The cap bounds the run when
// random play keeps redrawing already revealed cells.
func playRandom(cfg m.Config, mines int, seed int64) (m.GameState, int) {
	cfg.Seed = seed

	game := NewGame(cfg, mines)
	rng := rand.New(rand.NewSource(seed + 1))

	turns := 0
	maxTurns := cfg.Size() * 2

	for game.State() == m.InProgress && turns < maxTurns {
		game.Reveal(rng.Intn(cfg.Cols), rng.Intn(cfg.Rows))

		turns++
	}

	return game.State(), turns
}
