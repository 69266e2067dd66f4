package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/piigate/piigate/internal/config"
	"github.com/piigate/piigate/internal/guard"
	"github.com/piigate/piigate/internal/report"
	"github.com/piigate/piigate/internal/whitelist"
)

var (
	flagScanPath string
	flagInclude  string
	flagExclude  string
	flagWrite    bool
	flagMaxBytes int64
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scrub PII from files before indexing or sharing",
		Long:  "scan walks a directory, runs the pattern pipeline over every text file, and reports the PII it finds. With --write each file gets a .scrubbed sibling with all values masked.",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagScanPath, "path", "p", ".", "path to scan")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().BoolVar(&flagWrite, "write", false, "write masked copies next to the originals")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
}

func runScan(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	wl, err := whitelist.Load(cfg.WhitelistPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.WhitelistPath).
			Msg("whitelist unavailable, suppressing nothing")
	}

	// Offline scanning stays pattern-only. Shipping every file through the
	// semantic detector would make batch runs unbounded.
	svc := guard.New(wl, nil)

	abs, err := filepath.Abs(flagScanPath)
	if err != nil {
		return err
	}
	includes := parseGlobsList(flagInclude)
	excludes := parseGlobsList(flagExclude)

	var results []report.FileResult
	scanned := 0
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}
		if strings.HasSuffix(rel, ".scrubbed") || !shouldScan(rel, includes, excludes) {
			return nil
		}
		info, err := d.Info()
		if err != nil || info.Size() > flagMaxBytes {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", rel).Msg("skipping unreadable file")
			return nil
		}
		scanned++

		res := svc.Scrub(context.Background(), string(data))
		if len(res.Matches) == 0 {
			return nil
		}
		results = append(results, report.FileResult{Path: rel, Matches: res.Matches})

		if flagWrite {
			if err := os.WriteFile(path+".scrubbed", []byte(res.Scrubbed), 0644); err != nil {
				return fmt.Errorf("writing scrubbed copy of %s: %w", rel, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	report.PrintTable(os.Stdout, results, report.PrintOptions{NoColor: flagNoColor})
	fmt.Fprintf(os.Stdout, "Files scanned: %d\n", scanned)
	return nil
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func shouldScan(rel string, includes, excludes []string) bool {
	rel = filepath.ToSlash(rel)
	if len(includes) > 0 && !matchAnyGlob(rel, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rel, excludes) {
		return false
	}
	return true
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}
