package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strucware/strut/diagram"
	"github.com/strucware/strut/parse"
)

var (
	plotOutput string
	plotPlane  string
)

var plotCmd = &cobra.Command{
	Use:   "plot [file]",
	Short: "Export a frame geometry diagram (PNG, SVG or PDF)",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: please provide exactly one input file")
			os.Exit(1)
		}

		plane := diagram.PlaneXY
		switch plotPlane {
		case "xy", "":
		case "xz":
			plane = diagram.PlaneXZ
		default:
			fmt.Printf("error: unknown plane %q (want xy or xz)\n", plotPlane)
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

		if err := diagram.ExportFrameDiagram(result.Structure, plane, plotOutput); err != nil {
			logger.Error("exporting diagram failed", zap.Error(err))
			os.Exit(1)
		}
		fmt.Printf("diagram written to %s\n", plotOutput)
	},
}

func init() {
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "frame.png", "Output image path")
	plotCmd.Flags().StringVar(&plotPlane, "plane", "xy", "Projection plane: xy (elevation) or xz (plan)")
}
