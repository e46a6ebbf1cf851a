package session

import "sync"

// Store holds the current State. Readers get copies; subscribers are called
// after every dispatch, outside the lock, in subscription order.
type Store struct {
	mu     sync.Mutex
	state  State
	subs   []subscription
	nextID int
}

type subscription struct {
	id int
	fn func(State)
}

func NewStore() *Store {
	return &Store{state: initialState()}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Dispatch applies e and returns the resulting state.
func (s *Store) Dispatch(e Event) State {
	s.mu.Lock()
	s.state = Reduce(s.state, e)
	next := s.state.clone()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(next.clone())
	}
	return next
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}
