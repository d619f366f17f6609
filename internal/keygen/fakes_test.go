package keygen

import (
	"errors"
	"testing"
)

// seqSource replays vals (reduced modulo n) and wraps around.
type seqSource struct {
	vals  []int
	pos   int
	calls int
}

func (s *seqSource) Uniform(n int) (int, error) {
	s.calls++
	if len(s.vals) == 0 {
		return 0, nil
	}
	v := s.vals[s.pos%len(s.vals)] % n
	s.pos++
	return v, nil
}

// failSource fails the test if any randomness is drawn.
type failSource struct{ t *testing.T }

func (f failSource) Uniform(int) (int, error) {
	f.t.Helper()
	f.t.Fatal("randomness drawn before validation finished")
	return 0, nil
}

var errEntropy = errors.New("entropy unavailable")

type errSource struct{}

func (errSource) Uniform(int) (int, error) { return 0, errEntropy }
