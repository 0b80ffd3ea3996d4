package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/markpy98/masteryai/internal/core/domain"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage stored document analyses",
	Long:  `List, view, save, move or delete stored analyses and their revision histories.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	RunE:  runDocumentList,
}

var documentShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Show a document analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentShow,
}

var documentSaveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Save an analysis from a JSON file",
	Long: `Save an analysis payload for a source file. Re-saving the same file
name in the same folder adds a revision to the existing document
instead of creating a duplicate.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocumentSave,
}

var documentMoveCmd = &cobra.Command{
	Use:   "move [doc-id] [folder-id]",
	Short: "Move a document to another folder",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocumentMove,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document permanently",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

// Flags for the document commands.
var (
	documentListFolder  string
	documentShowVersion string
	documentSaveFolder  string
	documentSaveName    string
	documentDeleteYes   bool
)

func init() {
	documentListCmd.Flags().StringVarP(&documentListFolder, "folder", "f", "", "Only documents in this folder")
	documentShowCmd.Flags().StringVar(&documentShowVersion, "version", "", "Show a specific version id instead of the current content")
	documentSaveCmd.Flags().StringVarP(&documentSaveFolder, "folder", "f", domain.DefaultFolderID, "Target folder id")
	documentSaveCmd.Flags().StringVarP(&documentSaveName, "file-name", "n", "", "Source file name (defaults to the payload file name)")
	documentDeleteCmd.Flags().BoolVarP(&documentDeleteYes, "yes", "y", false, "Skip the confirmation prompt")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentShowCmd)
	documentCmd.AddCommand(documentSaveCmd)
	documentCmd.AddCommand(documentMoveCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()
	applyTheme()

	var docs []domain.Document
	var err error
	if documentListFolder != "" {
		docs, err = documentService.ListByFolder(ctx, documentListFolder)
	} else {
		docs, err = documentService.List(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents found.")
		return nil
	}

	cmd.Println(heading("Documents"))
	cmd.Println()
	for i := range docs {
		doc := &docs[i]
		cmd.Printf("  %s  %s\n", doc.Title, dim(doc.ID))
		cmd.Printf("    File: %s  Folder: %s  Revisions: %d  Updated: %s\n",
			doc.FileName, doc.FolderID, len(doc.History), formatTime(doc.CreatedAt))
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()
	applyTheme()

	doc, err := documentService.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	content := doc.ContentAt(documentShowVersion)

	cmd.Println(heading(content.Title))
	cmd.Println()
	cmd.Printf("  File:     %s\n", doc.FileName)
	cmd.Printf("  Folder:   %s\n", doc.FolderID)
	if content.Author != "" {
		cmd.Printf("  Author:   %s\n", content.Author)
	}
	cmd.Printf("  Updated:  %s\n", formatTime(doc.CreatedAt))
	cmd.Println()
	cmd.Println(content.Summary)

	if len(doc.History) > 0 {
		cmd.Println()
		cmd.Println(heading("History"))
		for _, v := range doc.History {
			cmd.Printf("  %s  %s  %s\n", formatTime(v.Timestamp), v.Note, dim(v.ID))
		}
	}

	return nil
}

func runDocumentSave(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading payload file: %w", err)
	}

	var content domain.AnalysisContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return fmt.Errorf("parsing payload file: %w", err)
	}

	fileName := documentSaveName
	if fileName == "" {
		fileName = args[0]
	}

	doc, err := documentService.Save(ctx, content, documentSaveFolder, fileName)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	cmd.Printf("Saved %q (%s), %d revision(s)\n", doc.Title, doc.ID, len(doc.History))
	return nil
}

func runDocumentMove(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()

	if _, err := documentService.Move(ctx, args[0], args[1]); err != nil {
		return fmt.Errorf("failed to move document: %w", err)
	}

	cmd.Printf("Moved document %s to folder %s\n", args[0], args[1])
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()

	if !documentDeleteYes {
		if !confirm(cmd, fmt.Sprintf("Delete document %s permanently?", args[0])) {
			cmd.Println("Aborted.")
			return nil
		}
	}

	if err := documentService.Delete(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Deleted document %s\n", args[0])
	return nil
}
