package frontend

import (
	"context"
	"go/token"
	"io/fs"
	"os"
	"path"
	"runtime"
	"strings"
	"testing/fstest"

	"github.com/cottand/sugar/frontend/ast"
	"github.com/cottand/sugar/frontend/hygiene"
	"github.com/cottand/sugar/frontend/ilerr"
	"github.com/cottand/sugar/frontend/intern"
	"github.com/cottand/sugar/frontend/sugar"
	"github.com/cottand/sugar/internal/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// SourceExtension is the extension of the files LoadPackage reads
const SourceExtension = ".sugar"

var packageLogger = log.DefaultLogger.With("section", "package")

// Package is a set of compilation units which are desugared together.
// Units share one interning table but are otherwise independent,
// so they can be desugared concurrently.
type Package struct {
	Units    []*Unit
	fSet     *token.FileSet
	interner *intern.Table
	settings PkgCompileSettings
}

// Unit is a single file of a Package
type Unit struct {
	Name string
	// Root is nil if the file could not be read
	Root   *ast.Node
	Stats  sugar.Stats
	errors *ilerr.Errors
}

func (u *Unit) Errors() *ilerr.Errors {
	return u.errors
}

type PkgCompileSettings struct {
	// Dir is the path of the folder in the filesystem where the package is located
	// the default is `.`
	Dir string
	// HygienicPrefix starts the names of compiler-introduced temporaries.
	// The default is hygiene.DefaultPrefix.
	HygienicPrefix string
	// Parallelism bounds how many units are desugared at once.
	// Zero means one per CPU.
	Parallelism int
}

type readFileDirFS interface {
	fs.ReadFileFS
	fs.ReadDirFS
}

// LoadPackage reads every SourceExtension file of the folder config.Dir of dir into a Unit.
// Files which cannot be read are reported as diagnostics of the Package, not as an error.
func LoadPackage(dir readFileDirFS, config PkgCompileSettings) (*Package, error) {
	dirPath := config.Dir
	if dirPath == "" {
		dirPath = "."
	}
	files, err := dir.ReadDir(dirPath)
	if err != nil {
		return nil, errors.Wrapf(err, "read package directory %s", dirPath)
	}

	pkg := &Package{
		fSet:     token.NewFileSet(),
		interner: intern.NewTable(),
		settings: config,
	}
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), SourceExtension) {
			continue
		}
		content, err := dir.ReadFile(path.Join(dirPath, file.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", file.Name())
		}
		pkg.addUnit(file.Name(), content)
	}
	if len(pkg.Units) == 0 {
		packageLogger.Warn("no source files found in package", "dir", dirPath)
	}
	return pkg, nil
}

// LoadFiles reads each of paths, in order, into a Unit of a new Package
func LoadFiles(paths []string, config PkgCompileSettings) (*Package, error) {
	pkg := &Package{
		fSet:     token.NewFileSet(),
		interner: intern.NewTable(),
		settings: config,
	}
	for _, p := range paths {
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", p)
		}
		pkg.addUnit(p, content)
	}
	return pkg, nil
}

// NewPackageFromBytes builds a Package of a single file, meant for testing
func NewPackageFromBytes(data []byte, filename string) (*Package, error) {
	filesystem := fstest.MapFS{
		filename: &fstest.MapFile{
			Data: data,
		},
	}
	return LoadPackage(filesystem, PkgCompileSettings{})
}

func (p *Package) addUnit(name string, content []byte) {
	unit := &Unit{Name: name, errors: &ilerr.Errors{}}
	p.Units = append(p.Units, unit)

	root, err := ast.Parse(p.fSet, name, content, p.interner)
	if err == nil {
		unit.Root = root
		return
	}
	var syntaxErr *ast.SyntaxError
	if !errors.As(err, &syntaxErr) {
		unit.errors.Report(ilerr.New(ilerr.Unclassified{From: err, Positioner: ast.Range{}}))
		return
	}
	unit.errors.Report(ilerr.New(ilerr.NewParse{
		Positioner:    syntaxErr.Range,
		ParserMessage: syntaxErr.Msg,
	}))
}

// Desugar desugars every unit of the Package concurrently.
// It stops at the first invariant violation, which it returns.
func (p *Package) Desugar(ctx context.Context) error {
	limit := p.settings.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	for _, unit := range p.Units {
		if unit.Root == nil {
			continue
		}
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return p.desugarUnit(unit)
		})
	}
	return group.Wait()
}

func (p *Package) desugarUnit(unit *Unit) error {
	namer := hygiene.NewGenerator(p.settings.HygienicPrefix)
	namer.Reserve(unit.Root)

	stats, err := sugar.New(p.interner, namer, unit.errors).Desugar(unit.Root)
	unit.Stats = stats
	if err != nil {
		return errors.Wrapf(err, "desugar %s", unit.Name)
	}
	packageLogger.Debug("desugared unit",
		"unit", unit.Name,
		"rewritten", stats.Rewritten,
		"replaced", stats.Replaced,
		"failed", stats.Failed,
		"symbols", p.interner.Len(),
		"errors", unit.errors)
	return nil
}

// Errors are the diagnostics of every unit, in unit order
func (p *Package) Errors() *ilerr.Errors {
	errs := &ilerr.Errors{}
	for _, unit := range p.Units {
		errs = errs.Merge(unit.errors)
	}
	return errs
}

// FileSet holds the positions of every node of the Package
func (p *Package) FileSet() *token.FileSet {
	return p.fSet
}

func (p *Package) Interner() intern.Interner {
	return p.interner
}

// Show desugars a single-file program and renders the resulting tree,
// or the program's diagnostics if it has any
func Show(ctx context.Context, program []byte, filename string) (string, error) {
	pkg, err := NewPackageFromBytes(program, filename)
	if err != nil {
		return "", err
	}
	if err := pkg.Desugar(ctx); err != nil {
		return "", err
	}
	sb := strings.Builder{}
	if errs := pkg.Errors(); errs.HasError() {
		sb.WriteString("the program has the following errors:\n")
		for _, ileError := range errs.Errors() {
			sb.WriteString(ilerr.FormatWithCodeAndSource(ileError, pkg.FileSet()))
			sb.WriteByte('\n')
		}
		return sb.String(), nil
	}
	for _, unit := range pkg.Units {
		sb.WriteString(ast.Pretty(unit.Root))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
