package search

import "sync"

// QueryState holds the current query for one page view. It starts empty and
// notifies subscribers on every change so they can recompute visibility and
// highlights.
type QueryState struct {
	mu     sync.Mutex
	query  string
	nextID int
	subs   []subscriber
}

type subscriber struct {
	id int
	fn func(query string)
}

// NewQueryState returns a QueryState with an empty query.
func NewQueryState() *QueryState {
	return &QueryState{}
}

// Query returns the current query.
func (s *QueryState) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Set replaces the query and calls every subscriber, in subscription order,
// on the caller's goroutine. Subscribers run after the new value is stored and
// without the lock held, so they may call Query.
func (s *QueryState) Set(query string) {
	s.mu.Lock()
	s.query = query
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(query)
	}
}

// Clear resets the query to empty.
func (s *QueryState) Clear() {
	s.Set("")
}

// Subscribe registers fn and returns a function that removes it.
func (s *QueryState) Subscribe(fn func(query string)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}
