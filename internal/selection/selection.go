// Package selection tracks the single asset the user has picked.
//
// A selection does not own the asset. It stores the position and the
// identifier of the picked entry and re-checks both against the collection
// every time it is resolved, so it can never outlive the entry it points at.
package selection

import (
	"errors"

	"github.com/temidaradev/ebicrypto/internal/market"
)

// ErrNotInCollection is returned when asked to select something the
// collection does not hold.
var ErrNotInCollection = errors.New("asset is not part of the collection")

type ref struct {
	index int
	id    string
}

// State holds zero or one selected asset.
type State struct {
	cur *ref
}

// Select replaces the current selection with the asset at index. Selecting
// the already selected asset keeps it selected.
func (s *State) Select(c market.Collection, index int) error {
	a := c.At(index)
	if a == nil {
		return ErrNotInCollection
	}
	s.cur = &ref{index: index, id: a.ID}
	return nil
}

// SelectID selects the first asset carrying id.
func (s *State) SelectID(c market.Collection, id string) error {
	i := c.IndexOf(id)
	if i < 0 {
		return ErrNotInCollection
	}
	return s.Select(c, i)
}

// Resolve returns the selected asset if it is still a live member of c.
// A reference whose asset has disappeared is cleared.
func (s *State) Resolve(c market.Collection) (market.Asset, bool) {
	if s.cur == nil {
		return market.Asset{}, false
	}
	if a := c.At(s.cur.index); a != nil && a.ID == s.cur.id {
		return *a, true
	}
	if i := c.IndexOf(s.cur.id); i >= 0 {
		s.cur.index = i
		return *c.At(i), true
	}
	s.cur = nil
	return market.Asset{}, false
}

// Index returns the position of the selection in the collection it was made
// against, or -1 when nothing is selected.
func (s *State) Index() int {
	if s.cur == nil {
		return -1
	}
	return s.cur.index
}

func (s *State) IsEmpty() bool {
	return s.cur == nil
}

// Clear drops the selection. Only the view lifecycle calls it.
func (s *State) Clear() {
	s.cur = nil
}
