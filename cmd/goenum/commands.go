package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	goenum "github.com/reoring/goenum"
	"github.com/reoring/goenum/internal/gen"
)

func newGenCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Render Go declarations for every family in the declaration file",
		Args:  cobra.NoArgs,
		RunE: a.runFunc(func(cmd *cobra.Command, cfg *config, _ []string) error {
			f, err := a.loadDecl(cfg)
			if err != nil {
				return err
			}
			code, err := gen.RenderFile(f)
			if err != nil {
				return pkgerrors.Wrap(err, "failed to render declarations")
			}
			if cfg.Out == "" || cfg.Out == "-" {
				_, err := cmd.OutOrStdout().Write(code)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(cfg.Out), 0o755); err != nil {
				return pkgerrors.Wrap(err, "failed to create the output directory")
			}
			if err := os.WriteFile(cfg.Out, code, 0o644); err != nil {
				return pkgerrors.Wrap(err, "failed to write the output file")
			}
			a.logger.Info("wrote generated file", "out", cfg.Out, "families", len(f.Families))
			return nil
		}),
	}
	cmd.Flags().StringP("out", "o", "", `output file ("-" or empty for stdout)`)
	cmd.Flags().String("package", "", "override the package name of the declaration file")
	return cmd
}

func newSchemaCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of one family or of the whole file",
		Args:  cobra.NoArgs,
		RunE: a.runFunc(func(cmd *cobra.Command, cfg *config, _ []string) error {
			f, err := a.loadDecl(cfg)
			if err != nil {
				return err
			}
			var v any = f.Schema()
			if cfg.Family != "" {
				fam, ok := findFamily(f, cfg.Family)
				if !ok {
					return fmt.Errorf("family %q is not declared in %s", cfg.Family, cfg.File)
				}
				v = fam.Schema()
			}
			b, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		}),
	}
	cmd.Flags().String("family", "", "family name or Go type name")
	return cmd
}

// checkTag backs the families built by the check command. They are detached,
// so repeated runs in one process never collide in the catalog.
type checkTag struct{}

func newCheckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check LABEL...",
		Short: "Check labels against a declared family",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.runFunc(func(cmd *cobra.Command, cfg *config, args []string) error {
			f, err := a.loadDecl(cfg)
			if err != nil {
				return err
			}
			if cfg.Family == "" {
				return errors.New("a family is required (--family or GOENUM_FAMILY)")
			}
			decl, ok := findFamily(f, cfg.Family)
			if !ok {
				return fmt.Errorf("family %q is not declared in %s", cfg.Family, cfg.File)
			}
			fam, err := goenum.NewFamily[checkTag](decl.Name,
				goenum.Detached(),
				goenum.WithTag(decl.Tag),
				goenum.WithCapacity(len(decl.Values)),
				goenum.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			for _, v := range decl.Values {
				if _, err := fam.Declare(v); err != nil {
					return err
				}
			}
			fam.Seal()

			out := cmd.OutOrStdout()
			if _, err := fam.ParseAll(args); err != nil {
				iss, ok := goenum.AsIssues(err)
				if !ok {
					return err
				}
				for _, is := range iss {
					fmt.Fprintf(out, "%s\t%s\t%s\n", is.Path, is.Code, is.Message)
				}
				return &exitError{code: 3, err: fmt.Errorf("%d of %d labels are not valid %s values", len(iss), len(args), fam.Name())}
			}
			for _, l := range args {
				fmt.Fprintf(out, "ok\t%s\n", l)
			}
			return nil
		}),
	}
	cmd.Flags().String("family", "", "family name or Go type name (required)")
	return cmd
}
