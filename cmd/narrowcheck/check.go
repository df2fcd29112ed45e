package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"narrowcheck/internal/diag"
	"narrowcheck/internal/diagfmt"
	"narrowcheck/internal/driver"
	"narrowcheck/internal/observ"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [<file.c|directory>...]",
	Short: "Check C sources for lossy 64-to-32 bit conversions",
	Long: `Check runs the narrowing analysis over the given files or directories.
Without arguments it reads targets from narrowcheck.toml, falling back to
the current directory.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Bool("werror", false, "treat narrowing warnings as errors")
	checkCmd.Flags().Bool("no-warnings", false, "suppress warnings, report only errors")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("no-source", false, "omit source lines and caret markers")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("no-cache", false, "disable the persistent result cache")
	checkCmd.Flags().Bool("drop-cache", false, "clear the persistent result cache before checking")
	checkCmd.Flags().Bool("timings", false, "print phase timings to stderr")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	werror, err := cmd.Flags().GetBool("werror")
	if err != nil {
		return fmt.Errorf("failed to get werror flag: %w", err)
	}
	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	noSource, err := cmd.Flags().GetBool("no-source")
	if err != nil {
		return fmt.Errorf("failed to get no-source flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	dropCache, err := cmd.Flags().GetBool("drop-cache")
	if err != nil {
		return fmt.Errorf("failed to get drop-cache flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	if noWarnings && werror {
		return fmt.Errorf("no-warnings and werror flags cannot be used together")
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	paths := args
	if len(paths) == 0 {
		manifest, ok, merr := loadProjectManifest(".")
		if merr != nil {
			return merr
		}
		if ok {
			paths = manifest.checkTargets()
			if !cmd.Flags().Changed("werror") && manifest.Config.Check.Werror {
				werror = true
			}
		} else {
			paths = []string{"."}
		}
	}

	var cache *driver.DiskCache
	if !noCache {
		// Отказ кэша не должен ломать проверку.
		cache, _ = driver.OpenDiskCache("narrowcheck")
	}
	if dropCache && cache != nil {
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop cache: %w", err)
		}
	}

	timer := observ.NewTimer()
	checkPhase := timer.Begin("check")
	fs, results, err := driver.CheckPaths(cmd.Context(), paths, driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Cache:          cache,
	})
	if err != nil {
		return err
	}
	timer.End(checkPhase, fmt.Sprintf("%d files", len(results)))

	exit := 0
	for i := range results {
		results[i].Bag.Sort()
		if noWarnings {
			results[i].Bag = dropWarnings(results[i].Bag, maxDiagnostics)
		}
		if results[i].Bag.HasErrors() || (werror && results[i].Bag.HasWarnings()) {
			exit = 1
		}
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	renderPhase := timer.Begin("render")
	switch format {
	case "pretty":
		opts := diagfmt.PrettyOpts{
			Color:      useColor,
			PathMode:   pathMode,
			ShowNotes:  withNotes,
			ShowSource: !noSource,
		}
		for _, r := range results {
			diagfmt.Pretty(os.Stdout, r.Bag, fs, opts)
		}
	case "json":
		opts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
		}
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for _, r := range results {
			output[r.Path] = diagfmt.BuildDiagnosticsOutput(r.Bag, fs, opts)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	case "short":
		all := make([]diag.Diagnostic, 0, len(results))
		for _, r := range results {
			all = append(all, r.Bag.Items()...)
		}
		if out := diag.FormatShortDiagnostics(all, fs, withNotes); out != "" {
			fmt.Fprintln(os.Stdout, out)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	timer.End(renderPhase, format)

	if timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if exit != 0 {
		// os.Exit пропускает defer, профили нужно закрыть явно.
		cleanup()
		os.Exit(exit)
	}
	return nil
}

// dropWarnings rebuilds a bag keeping errors only.
func dropWarnings(bag *diag.Bag, maxDiagnostics int) *diag.Bag {
	filtered := diag.NewBag(maxDiagnostics)
	for _, d := range bag.Items() {
		if d.Severity == diag.SevError {
			filtered.Add(d)
		}
	}
	return filtered
}
