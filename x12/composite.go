package x12

import (
	"github.com/dshills/gox12/schema"
)

// CompositeVal holds an ordered list of component ElementValues under a
// single element position, per the composite data element definition.
// Like every value in this package it is immutable: Copy returns a new
// CompositeVal reflecting the requested component replacements.
type CompositeVal struct {
	def        *schema.CompositeDef
	usage      schema.Usage
	pos        Position
	components []ElementValue
}

// NewCompositeVal builds a CompositeVal from its already-constructed
// component values, in component order.
func NewCompositeVal(def *schema.CompositeDef, usage schema.Usage, pos Position, components []ElementValue) *CompositeVal {
	cp := make([]ElementValue, len(components))
	copy(cp, components)
	return &CompositeVal{def: def, usage: usage, pos: pos, components: cp}
}

// Def returns the composite definition.
func (c *CompositeVal) Def() *schema.CompositeDef { return c.def }

// Usage returns the schema usage binding for this composite's position.
func (c *CompositeVal) Usage() schema.Usage { return c.usage }

// Position returns where this composite sits in the document.
func (c *CompositeVal) Position() Position { return c.pos }

// ComponentCount returns the number of components held.
func (c *CompositeVal) ComponentCount() int { return len(c.components) }

// Component returns the 1-indexed component value.
func (c *CompositeVal) Component(position int) (ElementValue, error) {
	if position < 1 || position > len(c.components) {
		return nil, ErrOutOfRange
	}
	return c.components[position-1], nil
}

// Empty reports whether every component is Empty -- a composite whose
// components are all empty carries no data and may be omitted by a
// writer the same way a scalar empty element would be.
func (c *CompositeVal) Empty() bool {
	for _, comp := range c.components {
		if !comp.Empty() {
			return false
		}
	}
	return true
}

// Copy returns a new CompositeVal with the given 1-indexed component
// positions replaced; positions not present in changes are carried over
// unchanged.
func (c *CompositeVal) Copy(changes map[int]ElementValue) *CompositeVal {
	next := make([]ElementValue, len(c.components))
	copy(next, c.components)
	for pos, v := range changes {
		if pos >= 1 && pos <= len(next) {
			next[pos-1] = v
		}
	}
	return &CompositeVal{def: c.def, usage: c.usage, pos: c.pos, components: next}
}
