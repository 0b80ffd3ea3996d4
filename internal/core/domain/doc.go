// Package domain defines the core business entities for MasteryAI.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Folder: A named node in the user's organisational hierarchy
//   - Document: A stored analysis with its full revision history
//   - AnalysisVersion: One immutable past snapshot of a document
//   - Settings: The singleton user preference record
//   - Snapshot: A full-store backup of folders, documents and settings
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
