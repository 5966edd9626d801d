package genetic

// scriptedSource replays a fixed sequence of draws so tests can pin the
// exact outcome of a randomized algorithm. PickIndex returns the next
// scripted value when it already lies in [low, high), otherwise it is folded
// into the range; SampleWeighted returns the next scripted value as the
// offset into the weight window. Float64 and Byte replay their own queues.
type scriptedSource struct {
	picks  []int
	floats []float64
	bytes  []byte

	pickCursor  int
	floatCursor int
	byteCursor  int
}

func newScriptedSource(picks ...int) *scriptedSource {
	return &scriptedSource{picks: picks}
}

func (s *scriptedSource) PickIndex(low, high int) int {
	v := s.nextPick()
	if v >= low && v < high {
		return v
	}
	return low + v%(high-low)
}

func (s *scriptedSource) SampleWeighted(weights []float64) (int, error) {
	return s.nextPick() % len(weights), nil
}

func (s *scriptedSource) Float64() float64 {
	if s.floatCursor >= len(s.floats) {
		return 0
	}
	v := s.floats[s.floatCursor]
	s.floatCursor++
	return v
}

func (s *scriptedSource) Byte() byte {
	if len(s.bytes) == 0 {
		return 0
	}
	v := s.bytes[s.byteCursor%len(s.bytes)]
	s.byteCursor++
	return v
}

// consumed reports how many pick/sample draws were taken.
func (s *scriptedSource) consumed() int {
	return s.pickCursor
}

func (s *scriptedSource) nextPick() int {
	if s.pickCursor >= len(s.picks) {
		return 0
	}
	v := s.picks[s.pickCursor]
	s.pickCursor++
	return v
}

func evaluationsWithFitness(fitnesses ...float64) []Evaluation {
	evaluations := make([]Evaluation, len(fitnesses))
	for i, f := range fitnesses {
		evaluations[i] = Evaluation{Genome: Genome{byte(i)}, Fitness: f}
	}
	return evaluations
}
