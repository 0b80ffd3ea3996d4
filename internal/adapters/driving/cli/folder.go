package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Manage library folders",
	Long:  `List folders or create new ones. Folders organise documents into a hierarchy.`,
}

var folderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all folders",
	RunE:  runFolderList,
}

var folderCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runFolderCreate,
}

// folderParent is a flag for the create command.
var folderParent string

func init() {
	folderCreateCmd.Flags().StringVarP(&folderParent, "parent", "p", "", "Parent folder id (omit for a root folder)")

	folderCmd.AddCommand(folderListCmd)
	folderCmd.AddCommand(folderCreateCmd)
	rootCmd.AddCommand(folderCmd)
}

func runFolderList(cmd *cobra.Command, _ []string) error {
	if folderService == nil {
		return errors.New("folder service not configured")
	}

	ctx := context.Background()
	applyTheme()

	folders, err := folderService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list folders: %w", err)
	}

	cmd.Println(heading("Folders"))
	cmd.Println()
	for _, folder := range folders {
		cmd.Printf("  %s  %s\n", folderLabel(folder, folders), dim(folder.ID))
	}
	cmd.Println()
	cmd.Printf("Total: %d folders\n", len(folders))
	return nil
}

func runFolderCreate(cmd *cobra.Command, args []string) error {
	if folderService == nil {
		return errors.New("folder service not configured")
	}

	ctx := context.Background()

	var parentID *string
	if folderParent != "" {
		parentID = &folderParent
	}

	folder, err := folderService.Create(ctx, args[0], parentID)
	if err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}

	cmd.Printf("Created folder %q (%s)\n", folder.Name, folder.ID)
	return nil
}
