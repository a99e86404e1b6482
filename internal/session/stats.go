package session

// Stats tracks per-session counters for the status line.
type Stats struct {
	Generation        int
	Population        int
	AveragePopulation float64
}

// Observe records a completed generation and its population.
func (s *Stats) Observe(population int) {
	s.Generation++
	s.Population = population
	// Simple moving average keeps the readout steady.
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
		return
	}
	s.AveragePopulation = s.AveragePopulation*0.9 + float64(population)*0.1
}

// Reset zeroes the counters alongside a board reset.
func (s *Stats) Reset() {
	*s = Stats{}
}


