// Package cli implements the command-line interface using cobra.
// Commands are thin: they parse flags, call driving-port services and
// render results. All state lives behind the service interfaces, which
// the root command wires up before any subcommand runs.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markpy98/masteryai/internal/adapters/driven/config/file"
	"github.com/markpy98/masteryai/internal/adapters/driven/storage/sqlite"
	"github.com/markpy98/masteryai/internal/core/ports/driving"
	"github.com/markpy98/masteryai/internal/core/services"
	"github.com/markpy98/masteryai/internal/logger"
)

// version is set by Execute from the build.
var version = "dev"

// Services used by the commands. Wired in initServices; tests replace
// them directly.
var (
	folderService   driving.FolderService
	documentService driving.DocumentService
	settingsService driving.SettingsService
	backupService   driving.BackupService
)

// sqliteStore is kept so the process can close the database on exit.
var sqliteStore *sqlite.Store

// Persistent flags.
var (
	flagDataDir   string
	flagConfigDir string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "masteryai",
	Short: "Local study library for document analyses",
	Long: `masteryai is a local-first library for AI-generated document analyses.

It keeps analysed documents organised in folders, tracks every revision
of an analysis, and can back up or restore the whole library as a single
JSON snapshot.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory (default ~/.masteryai/data)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Config directory (default ~/.masteryai)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")
}

// initServices wires the service layer over the SQLite and TOML
// adapters. It is a no-op when services are already present, which is
// how tests inject fakes.
func initServices() error {
	if folderService != nil {
		return nil
	}

	store, err := sqlite.NewStore(flagDataDir)
	if err != nil {
		return fmt.Errorf("opening library database: %w", err)
	}
	sqliteStore = store
	logger.Debug("library database at %s", store.Path())

	configStore, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	logger.Debug("config at %s", configStore.Path())

	folderStore := store.FolderStore()
	docStore := store.DocumentStore()

	folders := services.NewFolderService(folderStore)
	documents := services.NewDocumentService(docStore)
	settings := services.NewSettingsService(configStore)

	folderService = folders
	documentService = documents
	settingsService = settings
	backupService = services.NewBackupService(folders, documents, settings, folderStore, docStore)

	return nil
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}

	defer func() {
		if sqliteStore != nil {
			if err := sqliteStore.Close(); err != nil {
				logger.Warn("closing library database: %v", err)
			}
		}
	}()

	return rootCmd.Execute()
}
