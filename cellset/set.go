package cellset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/geoquad/model"
)

// Set is an unordered set of cell codes backed by a Roaring bitmap.
//
// A Set is not safe for concurrent mutation.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// Of creates a set holding the given codes.
func Of(codes ...model.Code) *Set {
	s := New()
	for _, c := range codes {
		s.rb.Add(uint32(c))
	}
	return s
}

// Add inserts a code.
func (s *Set) Add(c model.Code) {
	s.rb.Add(uint32(c))
}

// CheckedAdd inserts a code and reports whether it was absent.
func (s *Set) CheckedAdd(c model.Code) bool {
	return s.rb.CheckedAdd(uint32(c))
}

// Remove deletes a code.
func (s *Set) Remove(c model.Code) {
	s.rb.Remove(uint32(c))
}

// Contains reports whether the code is in the set.
func (s *Set) Contains(c model.Code) bool {
	return s.rb.Contains(uint32(c))
}

// Len returns the number of codes in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Codes returns the codes in ascending order.
func (s *Set) Codes() []model.Code {
	out := make([]model.Code, 0, s.rb.GetCardinality())
	it := s.rb.Iterator()
	for it.HasNext() {
		out = append(out, model.Code(it.Next()))
	}
	return out
}

// All returns an iterator over the codes in ascending order.
func (s *Set) All() iter.Seq[model.Code] {
	return func(yield func(model.Code) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(model.Code(it.Next())) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// Union adds every code of other to s.
func (s *Set) Union(other *Set) {
	s.rb.Or(other.rb)
}

// Intersect keeps only the codes also present in other.
func (s *Set) Intersect(other *Set) {
	s.rb.And(other.rb)
}

// Difference removes every code present in other.
func (s *Set) Difference(other *Set) {
	s.rb.AndNot(other.rb)
}

// Equal reports whether both sets hold the same codes.
func (s *Set) Equal(other *Set) bool {
	return s.rb.Equals(other.rb)
}

// Clear removes all codes.
func (s *Set) Clear() {
	s.rb.Clear()
}

// MarshalBinary implements encoding.BinaryMarshaler using the portable
// Roaring format.
func (s *Set) MarshalBinary() ([]byte, error) {
	s.rb.RunOptimize()
	return s.rb.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Set) UnmarshalBinary(data []byte) error {
	rb := roaring.New()
	if err := rb.UnmarshalBinary(data); err != nil {
		return err
	}
	s.rb = rb
	return nil
}
