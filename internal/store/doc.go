// Package store provides file-based persistence for radixconv's settings.
//
// PrefsFileStore implements domain.PreferencesStore, serialising the user's
// defaults as YAML under the configured home directory. Writes go through a
// temp file and rename, and all methods are concurrency-safe via internal
// locking.
package store
