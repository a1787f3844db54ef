package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	unsetEnv(t, EnvLogLevel)
	unsetEnv(t, EnvHygienicPrefix)
	color.NoColor = true

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	root := newRootForTest()
	root.SetOut(out)
	root.SetErr(errOut)
	// a config file that does not exist keeps the defaults
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), DefaultConfigFile)))
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestDesugarCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "ops.sugar", `(seq (plus (reference (id a)) (int 1)))`)

	stdout, stderr, err := execute(t, "desugar", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, "(seq (call (dot (reference (id a)) (id add)) (positionalargs (int 1)) x))\n", stdout)
}

func TestDesugarCommandDirectory(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.sugar", `(not true)`)
	writeSource(t, dir, "a.sugar", `(if true (seq (int 1)) x)`)
	writeSource(t, dir, "notes.txt", `not a tree`)

	stdout, _, err := execute(t, "desugar", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "// "+filepath.Join(dir, "a.sugar"))
	assert.Contains(t, stdout, "(if true (seq (int 1)) (seq (reference (id None))))")
	assert.Contains(t, stdout, "(call (dot true (id not_)) x x)")
	assert.Less(t, bytes.Index([]byte(stdout), []byte("a.sugar")), bytes.Index([]byte(stdout), []byte("b.sugar")))
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.sugar", `(primitive (id P) x x x (members))`)
	bad := writeSource(t, dir, "bad.sugar", `(class (id C) x x x (members (fun x (id create) x x x x (seq true))))`)

	stdout, _, err := execute(t, "check", good)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ok: 1 files")

	_, stderr, err := execute(t, "check", bad)
	require.Error(t, err)
	assert.Contains(t, stderr, "bad.sugar:1:30: (E003) member create clashes with autogenerated constructor")
}

func TestCommandRejectsMissingFile(t *testing.T) {
	_, _, err := execute(t, "check", filepath.Join(t.TempDir(), "missing.sugar"))
	assert.Error(t, err)
}

func newRootForTest() *cobra.Command {
	root := &cobra.Command{Use: "sugar", SilenceErrors: true, SilenceUsage: true}
	root.AddCommand(NewDesugarCmd(), NewCheckCmd())
	return root
}
