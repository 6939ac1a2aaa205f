package naming

import (
	"strconv"
	"sync"
)

// UniqueSet hands out filesystem-distinct names. Duplicate base names gain a
// numeric suffix in claim order (_2, _3, ...). Claim is safe for concurrent
// use; the export runner shares one set across animated and static layers.
type UniqueSet struct {
	mu   sync.Mutex
	used map[string]struct{}
}

// NewUniqueSet returns an empty set.
func NewUniqueSet() *UniqueSet {
	return &UniqueSet{used: make(map[string]struct{})}
}

// Claim returns base if it is unused, otherwise the first unused
// base_N for N >= 2. The returned name is registered before Claim returns.
func (s *UniqueSet) Claim(base string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := base
	for n := 2; ; n++ {
		if _, taken := s.used[name]; !taken {
			break
		}
		name = base + "_" + strconv.Itoa(n)
	}
	s.used[name] = struct{}{}
	return name
}

// Len returns the number of claimed names.
func (s *UniqueSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.used)
}
