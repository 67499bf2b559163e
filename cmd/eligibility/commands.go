package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
	"github.com/HendryAvila/sheraa-eligibility/internal/catalogdb"
	sheraaserver "github.com/HendryAvila/sheraa-eligibility/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the integrity checks over the configured catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(a.cfg.Catalog)
			if err != nil {
				return err
			}
			report := catalog.RunProtocolChecks(cat)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "questions: %d, programs: %d\n", cat.Len(), cat.NumPrograms())
			for _, w := range report.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			for _, issue := range report.Issues {
				fmt.Fprintf(out, "issue: %s\n", issue)
			}
			if !report.OK {
				return fmt.Errorf("%w: %d issue(s)", errCatalogInvalid, len(report.Issues))
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configured catalog as YAML or into a SQLite database",
		Example: `  eligibility export --format yaml --out catalog.yaml
  eligibility export --format sqlite --out data/catalog.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(a.cfg.Catalog)
			if err != nil {
				return err
			}
			switch strings.ToLower(format) {
			case "yaml":
				return exportYAML(cmd, cat, out)
			case "sqlite":
				if out == "" {
					return fmt.Errorf("--out is required for sqlite export")
				}
				store, err := catalogdb.Open(out)
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.Save(cat); err != nil {
					return err
				}
				a.logger.Info("catalog exported", zap.String("format", "sqlite"), zap.String("path", out))
				return nil
			default:
				return fmt.Errorf("invalid --format %q: must be yaml or sqlite", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or sqlite")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (yaml defaults to stdout)")
	return cmd
}

func exportYAML(cmd *cobra.Command, cat *catalog.Catalog, path string) error {
	if path == "" {
		return catalog.Encode(cmd.OutOrStdout(), cat)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := catalog.Encode(f, cat); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		// The version needs no config or logger.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "eligibility v%s\n", sheraaserver.Version)
		},
	}
}
