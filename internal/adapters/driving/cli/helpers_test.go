package cli

import (
	"github.com/markpy98/masteryai/internal/adapters/driven/storage/memory"
	"github.com/markpy98/masteryai/internal/core/services"
)

// setupTestServices wires the commands to services over in-memory
// adapters. initServices sees the populated service vars and skips
// opening real storage. Returns a cleanup function restoring the
// previous wiring.
func setupTestServices() func() {
	oldFolder := folderService
	oldDocument := documentService
	oldSettings := settingsService
	oldBackup := backupService

	folderStore := memory.NewFolderStore()
	docStore := memory.NewDocumentStore()
	configStore := memory.NewConfigStore()

	folders := services.NewFolderService(folderStore)
	documents := services.NewDocumentService(docStore)
	settings := services.NewSettingsService(configStore)

	folderService = folders
	documentService = documents
	settingsService = settings
	backupService = services.NewBackupService(folders, documents, settings, folderStore, docStore)

	return func() {
		folderService = oldFolder
		documentService = oldDocument
		settingsService = oldSettings
		backupService = oldBackup
	}
}
