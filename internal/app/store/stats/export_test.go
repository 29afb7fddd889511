package stats

import "time"

// SetNowFunc overrides the store's clock so tests can cross day
// boundaries deterministically.
func (s *Store) SetNowFunc(f func() time.Time) {
	s.now = f
}
