package core

// Solution is the outcome of one planning trial: the ordering that
// produced it, the committed path per agent, and the summed cost.
type Solution struct {
	Order     Ordering
	Paths     map[AgentID]Path
	TotalCost int
	Valid     bool
}

// NewSolution creates an empty, invalid solution.
func NewSolution() *Solution {
	return &Solution{
		Paths: make(map[AgentID]Path),
	}
}

// ComputeTotalCost sums committed path lengths (cell count including
// the start cell) and stores the result.
func (s *Solution) ComputeTotalCost() int {
	total := 0
	for _, p := range s.Paths {
		total += p.Cost()
	}
	s.TotalCost = total
	return total
}

// Makespan returns the latest arrival timestep across all paths.
func (s *Solution) Makespan() int {
	makespan := 0
	for _, p := range s.Paths {
		if len(p)-1 > makespan {
			makespan = len(p) - 1
		}
	}
	return makespan
}
