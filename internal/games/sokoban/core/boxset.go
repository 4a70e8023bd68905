package core

// BoxSet is an ordered set of box coordinates.
// Insertion order is preserved and duplicates are rejected.
type BoxSet struct {
	order []Coord
	index map[Coord]int
}

// NewBoxSet creates an empty box set.
func NewBoxSet() *BoxSet {
	return &BoxSet{index: make(map[Coord]int)}
}

// Add appends c. Returns false if c is already present.
func (s *BoxSet) Add(c Coord) bool {
	if _, ok := s.index[c]; ok {
		return false
	}
	s.index[c] = len(s.order)
	s.order = append(s.order, c)
	return true
}

// Remove deletes c, keeping the order of the remaining boxes.
// Returns false if c was not present.
func (s *BoxSet) Remove(c Coord) bool {
	i, ok := s.index[c]
	if !ok {
		return false
	}
	s.order = append(s.order[:i], s.order[i+1:]...)
	delete(s.index, c)
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j]] = j
	}
	return true
}

// Move replaces from with to at the same position in the order.
// Returns false if from is absent or to is already occupied.
func (s *BoxSet) Move(from, to Coord) bool {
	i, ok := s.index[from]
	if !ok {
		return false
	}
	if _, taken := s.index[to]; taken {
		return false
	}
	delete(s.index, from)
	s.order[i] = to
	s.index[to] = i
	return true
}

// Contains reports whether c is in the set.
func (s *BoxSet) Contains(c Coord) bool {
	_, ok := s.index[c]
	return ok
}

// Len returns the number of boxes.
func (s *BoxSet) Len() int {
	return len(s.order)
}

// At returns the i-th box in insertion order.
func (s *BoxSet) At(i int) Coord {
	return s.order[i]
}

// Slice returns a copy of the boxes in insertion order.
func (s *BoxSet) Slice() []Coord {
	out := make([]Coord, len(s.order))
	copy(out, s.order)
	return out
}

// Clone returns a deep copy of the set.
func (s *BoxSet) Clone() *BoxSet {
	c := &BoxSet{
		order: s.Slice(),
		index: make(map[Coord]int, len(s.order)),
	}
	for i, b := range c.order {
		c.index[b] = i
	}
	return c
}

func (s *BoxSet) reset(boxes []Coord) {
	s.order = s.order[:0]
	clear(s.index)
	for _, b := range boxes {
		s.Add(b)
	}
}
