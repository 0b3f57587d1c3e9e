package cache

import (
	"log/slog"
	"time"
)

// Stats is a point-in-time summary of a Store. It is computed by scanning
// every entry when requested and is never cached.
type Stats struct {
	TotalEntries   int
	ActiveEntries  int
	ExpiredEntries int

	// Capacity is only meaningful when Bounded is true.
	Capacity int
	Bounded  bool

	DefaultTTL time.Duration
}

// LogValue renders the snapshot as a slog group.
func (s Stats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("total", s.TotalEntries),
		slog.Int("active", s.ActiveEntries),
		slog.Int("expired", s.ExpiredEntries),
		slog.Duration("default_ttl", s.DefaultTTL),
	}
	if s.Bounded {
		attrs = append(attrs, slog.Int("capacity", s.Capacity))
	}
	return slog.GroupValue(attrs...)
}

// Stats scans the store once and reports how many entries are live.
func (s *Store[K, V]) Stats() Stats {
	now := s.engine.Now()
	expired := 0
	for _, e := range s.entries {
		if e.ExpiredAt(now) {
			expired++
		}
	}

	st := Stats{
		TotalEntries:   len(s.entries),
		ActiveEntries:  len(s.entries) - expired,
		ExpiredEntries: expired,
		DefaultTTL:     s.defaultTTL,
	}
	if s.capacity >= 0 {
		st.Capacity = s.capacity
		st.Bounded = true
	}
	return st
}
