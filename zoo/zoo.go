package zoo

import "strings"

// Zoo owns an ordered collection of creatures.
//
// Order is insertion order; nothing is ever reordered or deduplicated.
type Zoo struct {
	animals []Speaker
}

// New constructs an empty Zoo. The zero value works too.
func New() *Zoo {
	return &Zoo{}
}

// Add appends a creature to the zoo.
func (z *Zoo) Add(s Speaker) {
	z.animals = append(z.animals, s)
}

// Len reports how many creatures the zoo holds.
func (z *Zoo) Len() int { return len(z.animals) }

// Names returns the creatures' names in insertion order.
func (z *Zoo) Names() []string {
	names := make([]string, 0, len(z.animals))
	for _, a := range z.animals {
		names = append(names, a.Name())
	}
	return names
}

// List returns the roster line: every name in insertion order, each followed
// by a space, then a newline.
func (z *Zoo) List() string {
	var b strings.Builder
	b.WriteString("Animals in the zoo: ")
	for _, a := range z.animals {
		b.WriteString(a.Name())
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	return b.String()
}

// SpeakAll returns every creature's identification line, concatenated in
// insertion order.
func (z *Zoo) SpeakAll() string {
	var b strings.Builder
	for _, a := range z.animals {
		b.WriteString(a.Speak())
	}
	return b.String()
}
