// Package store defines the persistence interfaces for Taskhive entities
// along with the sentinel errors and transaction helpers shared by all
// store implementations.
package store
