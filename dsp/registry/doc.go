// Package registry builds processors by name and restores them from their
// configuration records.
//
// [Default] returns a registry holding every built-in filter and mapper.
// Callers can register additional factories under new names.
package registry
