package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strucware/strut/parse"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-parse input files whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"."}
		}

		engine, err := parse.NewEngine(cfgFile)
		if err != nil {
			logger.Fatal("failed to initialize parse engine", zap.Error(err))
		}

		watcher, err := parse.NewWatcher(engine, logger, args)
		if err != nil {
			logger.Fatal("failed to create watcher", zap.Error(err))
		}
		if err := watcher.Start(); err != nil {
			logger.Fatal("failed to start watching", zap.Error(err))
		}
		fmt.Printf("watching %v, press Ctrl-C to stop\n", args)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		if err := watcher.Stop(); err != nil {
			logger.Error("stopping watcher failed", zap.Error(err))
		}
	},
}
