package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pystyle/pystyle/internal"
	tt "github.com/pystyle/pystyle/internal/types"
	"github.com/pystyle/pystyle/lint"
)

// watchCmd: pystyle watch
var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-check Python files whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide directory paths")
			os.Exit(1)
		}

		engine, err := lint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize check engine", zap.Error(err))
		}

		watcher, err := internal.NewWatcher(engine, logger, args, reportChangedFile)
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}
		if err := watcher.Start(); err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
		defer func() { _ = watcher.Stop() }()

		logger.Info("watching for changes", zap.Strings("dirs", args))

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	},
}

func reportChangedFile(filename string, issues []tt.Issue) {
	if len(issues) == 0 {
		logger.Info("no issues found", zap.String("file", filename))
		return
	}
	for _, issue := range issues {
		fmt.Println(issue.String())
	}
}
