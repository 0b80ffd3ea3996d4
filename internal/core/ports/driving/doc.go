// Package driving defines the interfaces the core exposes to its
// callers (CLI commands, embedding applications).
//
// These are the "driving" ports of the hexagonal architecture: the
// adapters call in through them, the services implement them.
package driving
