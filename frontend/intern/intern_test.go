package intern

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternIsIdempotent(t *testing.T) {
	table := NewTable()
	a := table.Intern("create")
	b := table.Intern("create")
	c := table.Intern("apply")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "create", a.String())
	assert.Equal(t, 2, table.Len())
}

func TestSymbolsFromDifferentTablesAreEqual(t *testing.T) {
	assert.Equal(t, NewTable().Intern("x"), NewTable().Intern("x"))
}

func TestZeroSymbol(t *testing.T) {
	var zero Symbol
	assert.True(t, zero.IsZero())
	assert.Equal(t, "", zero.String())
	assert.False(t, NewTable().Intern("").IsZero())
}

func TestConcurrentIntern(t *testing.T) {
	table := NewTable()
	const workers, names = 8, 100

	results := make([][]Symbol, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range names {
				results[w] = append(results[w], table.Intern("n"+strconv.Itoa(i)))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, names, table.Len())
	for w := 1; w < workers; w++ {
		assert.Equal(t, results[0], results[w])
	}
}
