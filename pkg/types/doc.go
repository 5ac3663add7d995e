// Package types defines the readykit entities, the Store interface backing
// persistence, the import/export Snapshot, and the standard errors shared by
// every package.
package types
