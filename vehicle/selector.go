package vehicle

import (
	"sync"

	"github.com/pkg/errors"
)

// Selector holds the current vehicle profile. Converters read it once per message, so changes
// apply from the next message on.
type Selector struct {
	mu        sync.Mutex
	catalog   []Profile
	current   Profile
	nextID    int
	listeners map[int]func(Profile)
}

// NewSelector returns a selector over catalog with the first entry selected. A nil catalog
// uses DefaultCatalog.
func NewSelector(catalog []Profile) (*Selector, error) {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if err := ValidateCatalog(catalog); err != nil {
		return nil, err
	}
	return &Selector{
		catalog:   append([]Profile(nil), catalog...),
		current:   catalog[0],
		listeners: map[int]func(Profile){},
	}, nil
}

// Catalog returns a copy of the profiles the selector can choose from.
func (s *Selector) Catalog() []Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Profile(nil), s.catalog...)
}

// Current returns the selected profile.
func (s *Selector) Current() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Select makes the catalog profile with the given name current.
func (s *Selector) Select(name string) error {
	s.mu.Lock()
	p, ok := Lookup(s.catalog, name)
	s.mu.Unlock()
	if !ok {
		return errors.Errorf("unknown vehicle %q", name)
	}
	s.SelectProfile(p)
	return nil
}

// SelectProfile makes p current, even if it is not in the catalog, and notifies listeners.
func (s *Selector) SelectProfile(p Profile) {
	s.mu.Lock()
	s.current = p
	listeners := make([]func(Profile), 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if l, ok := s.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(p)
	}
}

// Subscribe registers fn to be called with the new profile after every selection. The returned
// func removes the listener.
func (s *Selector) Subscribe(fn func(Profile)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
