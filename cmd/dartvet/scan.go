package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/accrava/dartvet/internal/config"
	"github.com/accrava/dartvet/internal/engine"
	"github.com/accrava/dartvet/internal/report"
	"github.com/accrava/dartvet/internal/types"
)

var (
	flagJSON    bool
	flagSARIF   bool
	flagBase    string
	flagEnable  string
	flagDisable string
	flagNoColor bool
	flagDebug   bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan Dart sources for silent bug patterns",
		Long: `Scan runs nine line-level checks (ignored futures, unreachable code,
missing error handling, unguarded force unwraps, ...) over a .dart file
or every .dart file under a directory. Default path is lib.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagJSON, "json", false, "emit findings as JSON")
	cmd.Flags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	cmd.Flags().StringVar(&flagBase, "base", "", "scan only files changed vs this git branch")
	cmd.Flags().StringVar(&flagEnable, "enable", "", "only run these rules (comma-separated IDs)")
	cmd.Flags().StringVar(&flagDisable, "disable", "", "disable these rules (comma-separated IDs)")
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "plain output")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "verbose diagnostics on stderr")
}

func runScan(_ *cobra.Command, args []string) error {
	path := "lib"
	if len(args) == 1 {
		path = args[0]
	}

	log := newLogger(flagDebug)
	defer log.Sync()

	// Config precedence: CLI > local > global.
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(configDir(path)); err == nil {
		lcfg = c
	}

	s, err := engine.Scan(engine.Config{
		Path:         path,
		BaseBranch:   flagBase,
		EnableRules:  config.PickString(flagEnable, lcfg.Enable, gcfg.Enable),
		DisableRules: config.PickString(flagDisable, lcfg.Disable, gcfg.Disable),
		Log:          log,
	})
	if err != nil {
		return err
	}

	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, version, s.Findings); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		findings := s.Findings
		if findings == nil {
			findings = []types.Finding{}
		} // no `null` in JSON
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			return err
		}
	default:
		noColor := config.PickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
		report.Print(os.Stdout, s, report.PrintOptions{NoColor: noColor})
	}

	// exit codes: 0=clean, 1=findings, 2=scan finished but skipped files
	switch {
	case len(s.Findings) > 0:
		os.Exit(1)
	case len(s.ReadErrors) > 0:
		os.Exit(2)
	}
	return nil
}

// configDir anchors local config lookup: the scanned directory itself, or
// the parent when scanning a single file.
func configDir(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

func newLogger(debug bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	lg, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return lg.Sugar()
}
