// starfield-term flies through the starfield in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/milk9111/starfield/config"
	"github.com/milk9111/starfield/termview"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "", "path to a .yaml or .toml config (embedded defaults when empty)")
	logPath := flag.String("log", "", "write logs to this file (discarded when empty)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The alt screen owns stdout and stderr, so logs only go to a file.
	logger := zap.NewNop()
	if *logPath != "" {
		cfg.Logging.Output = *logPath
		if logger, err = config.NewLogger(cfg.Logging); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	m, err := termview.New(cfg, logger)
	if err != nil {
		logger.Error("start", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("run", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
