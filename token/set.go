package token

// Set is a bitset of Kind values, good for any Kind < 256, in the style
// of rust-analyzer's TokenSet, widened from two 64-bit words to four so
// it covers Lumen's larger keyword table.
type Set struct {
	words [4]uint64
}

// SetOf builds a Set containing the given kinds.
func SetOf(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s = s.Add(k)
	}
	return s
}

// Add returns a new set with kind inserted.
func (s Set) Add(k Kind) Set {
	s.words[k/64] |= 1 << (k % 64)
	return s
}

// Remove returns a new set with kind removed.
func (s Set) Remove(k Kind) Set {
	s.words[k/64] &^= 1 << (k % 64)
	return s
}

// Union returns the union of two sets.
func (s Set) Union(other Set) Set {
	for i := range s.words {
		s.words[i] |= other.words[i]
	}
	return s
}

// Contains reports whether kind is a member of the set.
func (s Set) Contains(k Kind) bool {
	return s.words[k/64]&(1<<(k%64)) != 0
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}
