package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strucware/strut/formatter"
	"github.com/strucware/strut/internal/types"
	"github.com/strucware/strut/parse"
)

var (
	parseJSONOutput bool
	outPath         string
	strictMode      bool
	cacheDir        string
)

var parseCmd = &cobra.Command{
	Use:   "parse [paths...]",
	Short: "Parse input files and report extracted records and diagnostics",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := parse.NewEngine(cfgFile)
		if err != nil {
			logger.Fatal("failed to initialize parse engine", zap.Error(err))
		}
		if cacheDir != "" {
			if err := engine.EnableCache(cacheDir); err != nil {
				logger.Warn("result cache disabled", zap.String("dir", cacheDir), zap.Error(err))
			}
		}

		results, err := parse.ProcessPaths(ctx, logger, engine, args)
		if err != nil {
			logger.Error("processing failed", zap.Error(err))
			os.Exit(1)
		}

		printResults(results, parseJSONOutput, outPath)

		if strictMode && hasDiagnostics(results) {
			os.Exit(1)
		}
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSONOutput, "json", false, "Output results in JSON format")
	parseCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	parseCmd.Flags().BoolVar(&strictMode, "strict", false, "Exit non-zero when any diagnostic was recorded")
	parseCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Cache parse results under this directory")
}

// fileReport is the JSON shape for one parsed file.
type fileReport struct {
	Filename    string             `json:"filename"`
	Nodes       int                `json:"nodes"`
	Members     int                `json:"members"`
	Supports    int                `json:"supports"`
	Dropped     int                `json:"dropped"`
	Diagnostics []types.Diagnostic `json:"diagnostics,omitempty"`
}

func printResults(results []parse.FileResult, isJSON bool, jsonPath string) {
	sorted := make([]parse.FileResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Filename < sorted[j].Filename })

	if isJSON {
		reports := make([]fileReport, 0, len(sorted))
		for _, r := range sorted {
			reports = append(reports, fileReport{
				Filename:    r.Filename,
				Nodes:       len(r.Structure.Nodes),
				Members:     len(r.Structure.Members),
				Supports:    len(r.Structure.Supports),
				Dropped:     r.Stats.Dropped,
				Diagnostics: r.Diagnostics,
			})
		}
		d, err := json.Marshal(reports)
		if err != nil {
			logger.Error("marshalling results to JSON failed", zap.Error(err))
			return
		}
		if jsonPath == "" {
			fmt.Println(string(d))
			return
		}
		if err := os.WriteFile(jsonPath, d, 0o644); err != nil {
			logger.Error("writing JSON output failed", zap.Error(err))
		}
		return
	}

	for _, r := range sorted {
		fmt.Printf("%s: %d node(s), %d member(s), %d support(s)",
			r.Filename, len(r.Structure.Nodes), len(r.Structure.Members), len(r.Structure.Supports))
		if r.Stats.Dropped > 0 {
			fmt.Printf(", %d dropped record(s)", r.Stats.Dropped)
		}
		fmt.Println()

		if len(r.Diagnostics) == 0 {
			continue
		}
		content, err := os.ReadFile(r.Filename)
		if err != nil {
			logger.Error("reading source for diagnostics failed",
				zap.String("file", r.Filename), zap.Error(err))
			continue
		}
		fmt.Println(formatter.Format(r.Diagnostics, formatter.NewSourceCode(string(content))))
	}
}

func hasDiagnostics(results []parse.FileResult) bool {
	for _, r := range results {
		if len(r.Diagnostics) > 0 {
			return true
		}
	}
	return false
}
