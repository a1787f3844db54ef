package main

import (
	"context"
	"embed"
	"fmt"
	"path"
	"strings"
	"testing"

	"github.com/cottand/sugar/frontend"
	"github.com/cottand/sugar/frontend/ast"
	"github.com/cottand/sugar/frontend/hygiene"
	"github.com/cottand/sugar/frontend/ilerr"
	"github.com/cottand/sugar/frontend/sugar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// embeds the fixture folder
//
//go:embed testdata
var testSet embed.FS

const directivePrefix = "//sugar:"

type fixture struct {
	input, output string
	errors        []string
}

// parseFixture splits a fixture into its sections. The format is as follows:
//
//	//sugar:input
//	tree to desugar
//	//sugar:output
//	expected tree
//	//sugar:errors E001 E002
//
// where the errors section is optional and lists the expected diagnostic codes.
func parseFixture(t *testing.T, content string) fixture {
	var f fixture
	sections := map[string]*strings.Builder{}
	var current *strings.Builder
	for _, line := range strings.Split(content, "\n") {
		directive, ok := strings.CutPrefix(strings.TrimSpace(line), directivePrefix)
		if !ok {
			if current != nil {
				current.WriteString(line)
				current.WriteByte('\n')
			}
			continue
		}
		name, rest, _ := strings.Cut(directive, " ")
		if name == "errors" {
			f.errors = strings.Fields(rest)
			current = nil
			continue
		}
		current = &strings.Builder{}
		sections[name] = current
	}
	if sections["input"] == nil || sections["output"] == nil {
		t.Fatalf("fixture needs input and output sections")
	}
	f.input, f.output = sections["input"].String(), sections["output"].String()
	return f
}

func TestFixturesEndToEnd(t *testing.T) {
	files, err := testSet.ReadDir("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), frontend.SourceExtension) {
			continue
		}
		t.Run(file.Name(), func(t *testing.T) {
			content, err := testSet.ReadFile(path.Join("testdata", file.Name()))
			require.NoError(t, err)
			f := parseFixture(t, string(content))

			pkg, err := frontend.NewPackageFromBytes([]byte(f.input), file.Name())
			require.NoError(t, err)
			require.NoError(t, pkg.Desugar(context.Background()))
			require.Len(t, pkg.Units, 1)
			root := pkg.Units[0].Root
			require.NotNil(t, root)

			var codes []string
			for _, e := range pkg.Errors().Errors() {
				codes = append(codes, fmt.Sprintf("E%03d", e.Code()))
			}
			assert.ElementsMatch(t, f.errors, codes, "diagnostics: %v", pkg.Errors().Errors())

			expected, err := ast.ParseString(f.output, pkg.Interner())
			require.NoError(t, err)
			assert.Truef(t, ast.Equal(expected, root), "expected\n%s\nbut got\n%s", ast.Pretty(expected), ast.Pretty(root))
			assert.Equal(t, expected.Hash(), root.Hash())

			// desugaring the output again changes nothing
			again := &ilerr.Errors{}
			stats, err := sugar.New(pkg.Interner(), hygiene.NewGenerator(""), again).Desugar(root)
			require.NoError(t, err)
			assert.Zero(t, stats.Changed())
		})
	}
}
