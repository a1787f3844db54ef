// Package hygiene generates names for compiler-introduced temporaries which
// cannot collide with names written by the programmer.
package hygiene

import (
	"sort"
	"strconv"

	"github.com/cottand/sugar/frontend/ast"
	"github.com/xtgo/set"
)

// DefaultPrefix is not a valid identifier character in source programs,
// so names starting with it are never written by hand.
const DefaultPrefix = "$"

// Namer hands out a fresh name per syntactic anchor.
// Asking again for the same anchor returns the same name.
type Namer interface {
	Fresh(anchor ast.Positioner) string
}

var _ Namer = (*Generator)(nil)

// Generator is a Namer for one compilation unit. It is not safe for concurrent use.
type Generator struct {
	prefix   string
	next     int
	byAnchor map[ast.Positioner]string
	// reserved is sorted and holds no duplicates
	reserved []string
}

func NewGenerator(prefix string) *Generator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Generator{
		prefix:   prefix,
		byAnchor: make(map[ast.Positioner]string),
	}
}

// Reserve marks every identifier used in the tree rooted at root as taken
func (g *Generator) Reserve(root *ast.Node) {
	ast.Inspect(root, func(n *ast.Node) bool {
		if n.Kind() == ast.ID {
			g.reserved = append(g.reserved, n.Name.String())
		}
		return true
	})
	sort.Strings(g.reserved)
	g.reserved = g.reserved[:set.Uniq(sort.StringSlice(g.reserved))]
}

func (g *Generator) Fresh(anchor ast.Positioner) string {
	if name, ok := g.byAnchor[anchor]; ok {
		return name
	}
	for {
		name := g.prefix + strconv.Itoa(g.next)
		g.next++
		if g.isReserved(name) {
			continue
		}
		g.byAnchor[anchor] = name
		return name
	}
}

func (g *Generator) isReserved(name string) bool {
	i := sort.SearchStrings(g.reserved, name)
	return i < len(g.reserved) && g.reserved[i] == name
}
