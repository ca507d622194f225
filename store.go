package xword

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds converted puzzles in memory.
type Store struct {
	mu      sync.RWMutex
	puzzles map[string]*Puzzle
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		puzzles: make(map[string]*Puzzle),
	}
}

// SavePuzzle persists a puzzle and returns it with a generated ID.
func (s *Store) SavePuzzle(p *Puzzle) *Puzzle {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()

	s.mu.Lock()
	s.puzzles[p.ID] = p
	s.mu.Unlock()

	return p
}

// GetPuzzle returns a puzzle by ID, or nil if not found.
func (s *Store) GetPuzzle(id string) *Puzzle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.puzzles[id]
}

// ListPuzzles returns all puzzles, most recent first.
func (s *Store) ListPuzzles() []*Puzzle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*Puzzle, 0, len(s.puzzles))
	for _, p := range s.puzzles {
		list = append(list, p)
	}
	// Sort by CreatedAt descending (simple insertion, small N).
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && list[j].CreatedAt.After(list[j-1].CreatedAt); j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
	return list
}
