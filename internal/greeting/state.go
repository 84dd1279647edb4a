package greeting

import "sync"

// State is the mutable state owned by one running server instance and
// shared by all dispatches to it. It does not survive a restart.
//
// The zero value is ready to use and starts counting at zero.
type State struct {
	lock   sync.Mutex
	visits uint64
}

// NextVisit records one more visit and returns the new total. The
// read-modify-write is atomic end-to-end: concurrent callers each observe
// a distinct post-increment value and no increment is lost.
func (s *State) NextVisit() uint64 {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.visits++
	return s.visits
}

// Visits returns the number of visits recorded so far.
func (s *State) Visits() uint64 {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.visits
}
