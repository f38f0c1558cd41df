// Package store defines the task persistence interface and the pure
// operations over a task collection. The operations take the current
// collection explicitly and return a new one, so implementations decide
// where the collection lives and when a result is committed.
package store
