package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	s := &Stack[int]{}
	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	s.Push(1)
	s.Push(2)
	assert.Equal(t, 2, s.Len())

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 2, top)

	popped, _ := s.Pop()
	assert.Equal(t, 2, popped)
	popped, _ = s.Pop()
	assert.Equal(t, 1, popped)
	assert.Equal(t, 0, s.Len())
}
