package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strucware/strut/diagram"
	"github.com/strucware/strut/parse"
)

var showProfile bool

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Print geometry statistics for a parsed model",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: please provide exactly one input file")
			os.Exit(1)
		}

		engine, err := parse.NewEngine(cfgFile)
		if err != nil {
			logger.Fatal("failed to initialize parse engine", zap.Error(err))
		}

		result, err := engine.RunFile(args[0])
		if err != nil {
			logger.Error("parsing failed", zap.String("file", args[0]), zap.Error(err))
			os.Exit(1)
		}

		summary := result.Structure.Summarize()
		fmt.Println(diagram.SummaryBox(filepath.Base(args[0]), diagram.GeometryLines(summary)))

		if showProfile {
			fmt.Println(diagram.ElevationProfile(result.Structure))
		}

		if len(result.Diagnostics) > 0 {
			fmt.Printf("%d diagnostic(s) recorded; run 'strut parse %s' for details\n",
				len(result.Diagnostics), args[0])
		}
	},
}

func init() {
	statsCmd.Flags().BoolVar(&showProfile, "profile", false, "Show terminal elevation profile")
}
