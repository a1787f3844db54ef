// Package intern canonicalises identifier text into Symbols which compare by identity.
//
// A single Table may be shared by every compilation unit of a build, including
// units desugared concurrently.
package intern

import (
	"sync"
	"sync/atomic"
	"unique"
)

// Symbol is an interned name. Two Symbols are == if and only if their text is equal.
// The zero Symbol is the empty name and is what absent identifiers carry.
type Symbol struct {
	h unique.Handle[string]
}

func (s Symbol) String() string {
	if s.IsZero() {
		return ""
	}
	return s.h.Value()
}

func (s Symbol) IsZero() bool {
	return s == Symbol{}
}

// Interner is what the front end needs from an interning table.
type Interner interface {
	Intern(text string) Symbol
}

var _ Interner = (*Table)(nil)

// Table is a concurrency-safe, insert-if-absent interning table.
// Lookups are idempotent and their result does not depend on insertion order.
type Table struct {
	symbols sync.Map // string -> Symbol
	size    atomic.Int64
}

func NewTable() *Table {
	return &Table{}
}

func (t *Table) Intern(text string) Symbol {
	if sym, ok := t.symbols.Load(text); ok {
		return sym.(Symbol)
	}
	sym, loaded := t.symbols.LoadOrStore(text, Symbol{h: unique.Make(text)})
	if !loaded {
		t.size.Add(1)
	}
	return sym.(Symbol)
}

// Len is the number of distinct names interned so far
func (t *Table) Len() int {
	return int(t.size.Load())
}
