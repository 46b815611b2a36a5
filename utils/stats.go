package utils

import (
	"fmt"
	"time"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Restarts             int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Elapsed is the time since the stats were created
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}

// Summary formats the run totals
func (s *Stats) Summary(elapsed time.Duration) string {
	rate := 0.0
	if elapsed > 0 {
		rate = float64(s.TotalGenerations) / elapsed.Seconds()
	}
	return fmt.Sprintf("Done %d iterations in: %s (%.1f gen/sec, %.1f avg population, %d restarts)",
		s.TotalGenerations, elapsed, rate, s.AveragePopulation, s.Restarts)
}
