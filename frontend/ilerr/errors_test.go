package ilerr

import (
	"go/token"
	"testing"

	"github.com/cottand/sugar/frontend/ast"
	"github.com/stretchr/testify/assert"
)

func TestNilErrorsAreEmpty(t *testing.T) {
	var errs *Errors
	assert.False(t, errs.HasError())
	assert.Empty(t, errs.Errors())

	errs = errs.Merge(nil)
	assert.Nil(t, errs)

	errs = errs.With(New(NewFallthroughWithoutBody{Positioner: ast.Range{}}))
	assert.True(t, errs.HasError())
	assert.Len(t, errs.Errors(), 1)
}

func TestMergeKeepsOrder(t *testing.T) {
	fst := (&Errors{}).With(New(NewParse{Positioner: ast.Range{}, ParserMessage: "first"}))
	snd := &Errors{}
	snd.Report(New(NewParse{Positioner: ast.Range{}, ParserMessage: "second"}))

	merged := fst.Merge(snd).Merge(&Errors{})
	msgs := make([]string, 0, 2)
	for _, err := range merged.Errors() {
		msgs = append(msgs, err.Error())
	}
	assert.Equal(t, []string{"first", "second"}, msgs)
}

func TestFormatWithCodeAndSource(t *testing.T) {
	fset := token.NewFileSet()
	file := fset.AddFile("foo.sugar", -1, 100)
	file.SetLines([]int{0, 10, 20})

	at := ast.Range{PosStart: file.Pos(12), PosEnd: file.Pos(15)}
	err := New(NewClashesWithAutogeneratedCtor{Positioner: at, Name: "create"})

	assert.Equal(t, "(E003) member create clashes with autogenerated constructor", FormatWithCode(err))
	assert.Equal(t, "foo.sugar:2:3: (E003) member create clashes with autogenerated constructor",
		FormatWithCodeAndSource(err, fset))
	assert.Equal(t, FormatWithCode(err), FormatWithCodeAndSource(err, nil))
}

func TestDebugErrorPrintingIncludesFrame(t *testing.T) {
	DebugErrorPrinting = true
	defer func() { DebugErrorPrinting = false }()

	err := New(NewMalformedNode{Positioner: ast.Range{}, Kind: ast.Assign, Reason: "expected 2 children"})
	formatted := FormatWithCode(err)
	assert.Contains(t, formatted, "(E002) malformed assign node: expected 2 children")
	assert.NotEqual(t, "(E002) malformed assign node: expected 2 children", formatted)
}
