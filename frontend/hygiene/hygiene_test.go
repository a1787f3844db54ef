package hygiene

import (
	"testing"

	"github.com/cottand/sugar/frontend/ast"
	"github.com/cottand/sugar/frontend/intern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreshIsUniquePerAnchor(t *testing.T) {
	g := NewGenerator("")
	a, b := &ast.Node{}, &ast.Node{}

	first := g.Fresh(a)
	assert.Equal(t, "$0", first)
	assert.Equal(t, first, g.Fresh(a))
	assert.Equal(t, "$1", g.Fresh(b))
}

func TestFreshSkipsReservedNames(t *testing.T) {
	in := intern.NewTable()
	tree, err := ast.ParseString("(seq (reference (id tmp0)) (reference (id tmp2)) (reference (id tmp0)))", in)
	require.NoError(t, err)

	g := NewGenerator("tmp")
	g.Reserve(tree)
	assert.Equal(t, []string{"tmp0", "tmp2"}, g.reserved)

	var names []string
	for i := 0; i < 3; i++ {
		names = append(names, g.Fresh(&ast.Node{}))
	}
	assert.Equal(t, []string{"tmp1", "tmp3", "tmp4"}, names)
}
