// Package memory provides in-memory implementations of the driven
// storage ports. They preserve the same ordering semantics as the
// SQLite adapter and are used as test doubles throughout the suite.
package memory
