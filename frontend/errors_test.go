package frontend_test

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/cottand/sugar/frontend"
	"github.com/cottand/sugar/frontend/ilerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testError(t *testing.T, prog string, shouldContain ...string) {
	t.Helper()
	pkg, err := frontend.NewPackageFromBytes([]byte(prog), "test.sugar")
	require.NoError(t, err)
	require.NoError(t, pkg.Desugar(context.Background()))

	sb := strings.Builder{}
	for _, err := range pkg.Errors().Errors() {
		sb.WriteString(ilerr.FormatWithCodeAndSource(err, pkg.FileSet()))
		sb.WriteString("\n-----------\n")
	}
	errMsg := sb.String()
	for _, s := range shouldContain {
		assert.Contains(t, errMsg, s)
	}
	t.Log("error message:\n" + errMsg)
}

func TestCompileErrors(t *testing.T) {
	cases := map[string][]string{
		`(class (id C) x x x (members (be x (id create) x x x x (seq true))))`: {"clashes with autogenerated constructor", "E003"},
		`(for (int 3) x (reference (id xs)) (seq true) x)`:                     {"malformed int node", "E002"},
		`(plus (reference (id a)))`:                                            {"expected 2 children, found 1"},
		`(seq (nonsense))`:                                                     {"unknown node kind", "E001"},
	}

	for prog, expected := range cases {
		t.Run(prog, func(t *testing.T) {
			pkg, err := frontend.NewPackageFromBytes([]byte(prog), "test.sugar")
			require.NoError(t, err)
			require.NoError(t, pkg.Desugar(context.Background()))

			var errsAsStrings []string
			for _, err := range pkg.Errors().Errors() {
				errsAsStrings = append(errsAsStrings, ilerr.FormatWithCode(err))
			}
			for _, expectedMessage := range expected {
				found := slices.ContainsFunc(errsAsStrings, func(s string) bool {
					return strings.Contains(s, expectedMessage)
				})
				assert.Truef(t, found, "expected %q in %v", expectedMessage, errsAsStrings)
			}
		})
	}
}

func TestErrorOffsetEOF(t *testing.T) {
	prog := `(module

	// a comment
	(class (id C) x x x (members)
`
	testError(t, prog, "test.sugar:4:2:", "unclosed (class")
}

func TestErrorOffsetStartOfLine(t *testing.T) {
	prog := `(module
	(primitive (id P) x x x (members))


(class (id C) x x x
	(members
		(fun x (id create) x x x x (seq true)))))`

	testError(t, prog, "test.sugar:7:3:", "E003")
}

func TestErrorOffsetLongFile(t *testing.T) {
	prog := `(module
















	(seq
		(plus (int 1)))
)`
	testError(t, prog, "test.sugar:19:3:", "E002")
}
