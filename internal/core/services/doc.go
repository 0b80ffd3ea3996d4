// Package services implements the driving ports over the driven
// storage ports.
//
// The store is scoped to one local process, but UI callers may fire
// overlapping operations, so every public operation runs under its
// service's mutex: save and import are read-modify-write sequences
// over the whole collection and would lose updates otherwise.
//
// Error policy (one rule, applied everywhere): reads degrade — a
// storage failure is logged and an empty or default result returned
// so the caller can still render a functional state; writes fail —
// the cause is logged and a single generic domain.ErrStorage
// surfaced.
package services
