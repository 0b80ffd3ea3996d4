package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/markpy98/masteryai/internal/logger"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and import library snapshots",
	Long: `Export the whole library (folders, documents and settings) to a JSON
snapshot, or restore from one. Importing a snapshot replaces the
current library contents.`,
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library to a JSON snapshot",
	RunE:  runBackupExport,
}

var backupImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Restore the library from a snapshot",
	Long: `Restore folders, documents and settings from a snapshot file.
This replaces the current library contents entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupImport,
}

var backupImportDocumentCmd = &cobra.Command{
	Use:   "import-document [file]",
	Short: "Import a single shared document",
	Long: `Import one document exported from another library. The existing
library is untouched; a conflicting document id is regenerated.`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupImportDocument,
}

// Flags for the backup commands.
var (
	backupExportOutput string
	backupImportYes    bool
)

func init() {
	backupExportCmd.Flags().StringVarP(&backupExportOutput, "output", "o", "", "Write the snapshot to this file instead of stdout")
	backupImportCmd.Flags().BoolVarP(&backupImportYes, "yes", "y", false, "Skip the confirmation prompt")

	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
	backupCmd.AddCommand(backupImportDocumentCmd)
	rootCmd.AddCommand(backupCmd)
}

func runBackupExport(cmd *cobra.Command, _ []string) error {
	if backupService == nil {
		return errors.New("backup service not configured")
	}

	ctx := context.Background()

	raw, err := backupService.ExportJSON(ctx)
	if err != nil {
		return fmt.Errorf("failed to export library: %w", err)
	}

	if backupExportOutput == "" {
		cmd.Println(string(raw))
		return nil
	}

	if err := os.WriteFile(backupExportOutput, raw, 0600); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}

	cmd.Printf("Exported library to %s\n", backupExportOutput)
	return nil
}

func runBackupImport(cmd *cobra.Command, args []string) error {
	if backupService == nil {
		return errors.New("backup service not configured")
	}

	ctx := context.Background()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading snapshot file: %w", err)
	}

	if !backupImportYes {
		if !confirm(cmd, "Importing replaces the whole library. Continue?") {
			cmd.Println("Aborted.")
			return nil
		}
	}

	logger.Section("Restore")
	if err := backupService.Import(ctx, raw); err != nil {
		return fmt.Errorf("failed to import snapshot: %w", err)
	}

	cmd.Println("Library restored from snapshot.")
	return nil
}

func runBackupImportDocument(cmd *cobra.Command, args []string) error {
	if backupService == nil {
		return errors.New("backup service not configured")
	}

	ctx := context.Background()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading document file: %w", err)
	}

	doc, err := backupService.ImportDocument(ctx, raw)
	if err != nil {
		return fmt.Errorf("failed to import document: %w", err)
	}

	cmd.Printf("Imported %q (%s) into folder %s\n", doc.Title, doc.ID, doc.FolderID)
	return nil
}

// confirm asks the user a yes/no question on stdin.
//
//nolint:errcheck // CLI helper, error ignored for UX
func confirm(cmd *cobra.Command, question string) bool {
	cmd.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	input, _ := reader.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}
