package cmd

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cottand/sugar/frontend"
	"github.com/cottand/sugar/frontend/ilerr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type commonFlags struct {
	config         string
	logLevel       string
	hygienicPrefix string
	noColor        bool
	parallelism    int
	debugErrors    bool
}

func (f *commonFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.config, "config", "c", DefaultConfigFile, "configuration file")
	c.Flags().StringVarP(&f.logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")
	c.Flags().StringVar(&f.hygienicPrefix, "hygienic-prefix", "", "prefix of compiler-introduced names")
	c.Flags().BoolVar(&f.noColor, "no-color", false, "disable coloured output")
	c.Flags().IntVarP(&f.parallelism, "parallelism", "j", 0, "files desugared at once, 0 for one per CPU")
	c.Flags().BoolVar(&f.debugErrors, "debug-errors", false, "show where in the compiler diagnostics were raised")
}

// load reads the configuration file and lets the flags set on c override it
func (f *commonFlags) load(c *cobra.Command) (*Config, error) {
	config, err := LoadConfig(f.config)
	if err != nil {
		return nil, err
	}
	flags := c.Flags()
	if flags.Changed("log-level") {
		config.LogLevel = f.logLevel
	}
	if flags.Changed("hygienic-prefix") {
		config.HygienicPrefix = f.hygienicPrefix
	}
	if flags.Changed("no-color") {
		enabled := !f.noColor
		config.Color = &enabled
	}
	if flags.Changed("parallelism") {
		config.Parallelism = f.parallelism
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	config.Apply()
	ilerr.DebugErrorPrinting = f.debugErrors
	return config, nil
}

// sourceFiles expands directories among targets into the source files they contain
func sourceFiles(targets []string) ([]string, error) {
	var files []string
	for _, target := range targets {
		stat, err := os.Stat(target)
		if err != nil {
			return nil, errors.Wrap(err, "could not stat target")
		}
		if !stat.IsDir() {
			files = append(files, target)
			continue
		}
		entries, err := os.ReadDir(target)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read directory %s", target)
		}
		var inDir []string
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), frontend.SourceExtension) {
				inDir = append(inDir, filepath.Join(target, entry.Name()))
			}
		}
		sort.Strings(inDir)
		files = append(files, inDir...)
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no %s files found", frontend.SourceExtension)
	}
	return files, nil
}

// loadAndDesugar is the part of every command that goes from arguments to a desugared Package
func loadAndDesugar(c *cobra.Command, flags *commonFlags, args []string) (*frontend.Package, error) {
	config, err := flags.load(c)
	if err != nil {
		return nil, err
	}
	files, err := sourceFiles(args)
	if err != nil {
		return nil, err
	}
	pkg, err := frontend.LoadFiles(files, config.CompileSettings())
	if err != nil {
		return nil, errors.Wrap(err, "could not load package")
	}
	if err := pkg.Desugar(c.Context()); err != nil {
		return nil, errors.Wrap(err, "could not desugar package (this is a bug and not a compile error)")
	}
	return pkg, nil
}
