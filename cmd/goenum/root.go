package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reoring/goenum/i18n"
	"github.com/reoring/goenum/internal/gen"
)

// config is the merged view of flags, GOENUM_* environment variables and the
// optional config file.
type config struct {
	File    string
	Out     string
	Package string
	Family  string
	Lang    string
	Verbose bool
}

type app struct {
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr}
	a.v.SetEnvPrefix("GOENUM")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "goenum",
		Short:         "Generate and check closed enumerations declared in YAML",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (YAML) providing defaults for every flag")
	pf.StringP("file", "f", "", "declaration file")
	pf.String("lang", "en", `message language ("en" or "ja")`)
	pf.BoolP("verbose", "v", false, "enable debug logs on stderr")

	cmd.AddCommand(
		newGenCommand(a),
		newSchemaCommand(a),
		newCheckCommand(a),
	)
	return cmd
}

// runFunc is the common entrypoint: it merges configuration, sets up logging
// and hands the loaded config to f.
func (a *app) runFunc(f func(cmd *cobra.Command, cfg *config, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := a.mergeConfig(cmd)
		if err != nil {
			return pkgerrors.Wrap(err, "failed to merge command line flags and config file")
		}
		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
		i18n.SetLanguage(cfg.Lang)
		return f(cmd, cfg, args)
	}
}

func (a *app) mergeConfig(cmd *cobra.Command) (*config, error) {
	// Flags includes the persistent flags once cobra has parsed them.
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return nil, pkgerrors.Wrapf(err, "failed to read config %s", path)
		}
	}
	cfg := &config{
		File:    a.v.GetString("file"),
		Out:     a.v.GetString("out"),
		Package: a.v.GetString("package"),
		Family:  a.v.GetString("family"),
		Lang:    a.v.GetString("lang"),
		Verbose: a.v.GetBool("verbose"),
	}
	if cfg.File == "" {
		return nil, errors.New("a declaration file is required (--file or GOENUM_FILE)")
	}
	return cfg, nil
}

func (a *app) loadDecl(cfg *config) (gen.File, error) {
	data, err := os.ReadFile(cfg.File)
	if err != nil {
		return gen.File{}, pkgerrors.Wrap(err, "failed to read the declaration file")
	}
	f, err := gen.Parse(data)
	if err != nil {
		return gen.File{}, pkgerrors.Wrapf(err, "invalid declaration file %s", cfg.File)
	}
	if cfg.Package != "" {
		f.Package = cfg.Package
	}
	a.logger.Debug("loaded declarations", "file", cfg.File, "package", f.Package, "families", len(f.Families))
	return f, nil
}

func findFamily(f gen.File, name string) (gen.Family, bool) {
	for _, fam := range f.Families {
		if fam.Name == name || fam.TypeName() == name {
			return fam, true
		}
	}
	return gen.Family{}, false
}

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return 1
}
