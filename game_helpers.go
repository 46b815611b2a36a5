package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sheikhrachel/go-bitlife/model"
	"github.com/sheikhrachel/go-bitlife/utils"
)

// game is the state of one harness run
type game struct {
	config   utils.Config
	current  *model.Board
	next     *model.Board
	pool     *model.BoardPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	history  model.History
	seed     uint64
}

// initializeGame sets up the two board buffers and the collaborators around them
func initializeGame(config utils.Config, renderer *model.TerminalRenderer) *game {
	g := &game{
		config:   config,
		renderer: renderer,
		stats:    utils.NewStats(),
		seed:     config.Seed,
	}
	if config.UseMemoryPool {
		g.pool = model.NewBoardPool()
	}

	g.current = g.newBoard()
	g.current.Fill(g.seed)
	g.next = g.newBoard()
	return g
}

func (g *game) newBoard() *model.Board {
	if g.pool != nil {
		return g.pool.Get()
	}
	return model.NewEmptyBoard()
}

// step advances one generation and swaps the buffers
func (g *game) step() {
	if g.config.Workers > 1 {
		g.next.UpdateParallel(g.current, g.config.Workers)
	} else {
		g.next.Update(g.current)
	}
	g.current, g.next = g.next, g.current
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(population, stagnantCount int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds the board from the next value of the seed recurrence
func (g *game) restartGame(reason string) {
	log.Printf("Restarting due to %s", reason)

	model.BoardToPool(g.current, g.pool)
	g.seed = model.NextSeed(g.seed)
	g.current = g.newBoard()
	g.current.Fill(g.seed)
	g.history.Reset()
	g.stats.Restarts++

	log.Printf("New board seeded, living cells: %d", g.current.Population())
}

// trackStagnation records the generation and returns the updated stagnant streak
func (g *game) trackStagnation(stagnantCount int) int {
	if g.history.IsStagnant(g.current) {
		stagnantCount++
	} else {
		stagnantCount = 0
	}
	g.history.Record(g.current)
	return stagnantCount
}

// displayFrame draws one animation frame in place
func (g *game) displayFrame(generation int) {
	g.renderer.Home()
	fmt.Fprintf(g.renderer.Out, "iteration: %d \n", generation)
	g.renderer.Display(g.current, g.config.Debug)
	time.Sleep(g.config.FrameRate)
}

// run plays the configured number of generations unless a signal arrives first
func (g *game) run(sigChan <-chan os.Signal) {
	if g.config.ShowBoards {
		fmt.Fprintln(g.renderer.Out, "Starting board:")
		g.renderer.Display(g.current, g.config.Debug)
	}

	var (
		stagnantCount = 0
		start         = time.Now()
		lastFrameTime = start
	)

	for generation := range g.config.Iterations {
		select {
		case sig := <-sigChan:
			log.Printf("Received signal %v, stopping after %d generations", sig, generation)
			g.finish(start)
			return
		default:
		}

		g.step()

		if g.config.Animate {
			g.displayFrame(generation)
		}

		population := g.current.Population()
		now := time.Now()
		g.stats.Update(generation+1, population, now.Sub(lastFrameTime))
		lastFrameTime = now

		if g.config.AutoRestart {
			stagnantCount = g.trackStagnation(stagnantCount)
			if shouldRestart, reason := checkRestartConditions(population, stagnantCount, g.config); shouldRestart {
				g.restartGame(reason)
				stagnantCount = 0
			}
		}
	}

	g.finish(start)
}

// finish prints the final board and the timing summary
func (g *game) finish(start time.Time) {
	elapsed := time.Since(start)
	if g.config.ShowBoards {
		fmt.Fprintln(g.renderer.Out)
		fmt.Fprintln(g.renderer.Out, "Final board:")
		g.renderer.Display(g.current, g.config.Debug)
	}
	fmt.Fprintln(g.renderer.Out, g.stats.Summary(elapsed))

	model.BoardToPool(g.next, g.pool)
}
