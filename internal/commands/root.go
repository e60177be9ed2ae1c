package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ramikhoury/lounge/internal/config"
	"github.com/ramikhoury/lounge/internal/logger"
	"github.com/ramikhoury/lounge/internal/storage"
	"github.com/ramikhoury/lounge/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfgPath string
	cfg     config.Config

	appStorage *storage.Storage
	appStore   *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "lounge",
	Short: "Front-desk manager for a gaming lounge",
	Long: `lounge tracks customers, prepaid minute credit and timed play sessions
from the terminal, with a live countdown timer for every desk.`,
}

// openStore loads config, logging and persisted state, then clears any
// timers that ran out while the process was down.
func openStore() error {
	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return fmt.Errorf("failed to resolve data directory: %w", err)
	}
	logger.Init(cfg.LogLevel, filepath.Join(dataDir, "lounge.log"))

	appStorage, err = storage.Open(filepath.Join(dataDir, "lounge.db"))
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	appStore = store.New(appStorage)
	if err := appStore.Load(); err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}

	if n, err := appStore.SweepExpired(); err != nil {
		logger.Log.Warn("startup sweep could not persist", zap.Error(err))
	} else if n > 0 {
		logger.Log.Info("cleared expired timers on startup", zap.Int("count", n))
	}
	return nil
}

// withStore wraps a command function to initialize the store first.
func withStore(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := openStore(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer appStorage.Close()
		fn(cmd, args)
	}
}

// confirm asks a yes/no question on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(creditCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(payCmd)
	rootCmd.AddCommand(removeSessionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
