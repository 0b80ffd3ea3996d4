// Package driven defines the interfaces the core requires from
// infrastructure (storage, configuration).
//
// These are the "driven" ports of the hexagonal architecture: the
// core calls out through them, adapters implement them. The SQLite
// adapter backs the folder and document stores; the TOML file adapter
// backs the config store; the memory adapters back both in tests.
package driven
