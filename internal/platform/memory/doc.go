// Package memory provides process-memory implementations of the store
// interfaces. State lives for the lifetime of the process and is lost on
// restart.
package memory
