package cmd

import (
	"fmt"
	"go/token"
	"io"

	"github.com/cottand/sugar/frontend/ilerr"
	"github.com/fatih/color"
)

var (
	locationFmt = color.New(color.Bold).SprintFunc()
	errorFmt    = color.New(color.FgRed).SprintFunc()
	okFmt       = color.New(color.FgGreen).SprintfFunc()
	headerFmt   = color.New(color.FgBlue, color.Bold).SprintfFunc()
)

func formatDiagnostic(e ilerr.IleError, fset *token.FileSet) string {
	message := errorFmt(ilerr.FormatWithCode(e))
	if !e.Pos().IsValid() {
		return message
	}
	return fmt.Sprintf("%s %s", locationFmt(fset.Position(e.Pos()).String()+":"), message)
}

// writeDiagnostics writes errs one per line and returns how many there were
func writeDiagnostics(w io.Writer, errs *ilerr.Errors, fset *token.FileSet) int {
	for _, e := range errs.Errors() {
		_, _ = fmt.Fprintln(w, formatDiagnostic(e, fset))
	}
	return len(errs.Errors())
}
