package model

import "time"

// Named is implemented by anything that can report a display name
type Named interface {
	// FullName returns the display name; it never changes unless the
	// underlying fields do
	FullName() string
}

// Equaler is implemented by types that define their own equivalence relation
type Equaler[T any] interface {
	Equal(other T) bool
}

// Person is a named entity whose full name is stored as given
type Person struct {
	fullName string
}

// NewPerson creates a Person with the given full name
func NewPerson(fullName string) Person {
	return Person{fullName: fullName}
}

// FullName returns the stored full name
func (p Person) FullName() string {
	return p.fullName
}

// StarshipID uniquely identifies a registered starship
type StarshipID string

// Starship is a named entity whose full name is derived from an optional prefix
type Starship struct {
	ID           StarshipID
	Name         string
	Prefix       *string // optional, e.g. "USS"
	RegisteredAt time.Time
}

// NewStarship creates an unregistered Starship. An empty prefix means none.
func NewStarship(name, prefix string) *Starship {
	s := &Starship{Name: name}
	if prefix != "" {
		s.Prefix = &prefix
	}
	return s
}

// FullName returns "<prefix> <name>" when a prefix is set, otherwise the name
func (s *Starship) FullName() string {
	if s.Prefix != nil {
		return *s.Prefix + " " + s.Name
	}
	return s.Name
}

// Equal reports whether both starships have the same full name.
// Two ships with different IDs, names or prefixes are equal if their
// full names match. A nil starship equals only another nil starship.
func (s *Starship) Equal(other *Starship) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.FullName() == other.FullName()
}

// Ensure both variants satisfy the capabilities
var (
	_ Named              = Person{}
	_ Named              = (*Starship)(nil)
	_ Equaler[*Starship] = (*Starship)(nil)
)
