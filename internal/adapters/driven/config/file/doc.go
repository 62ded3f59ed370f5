// Package file provides file-based implementations of driven port interfaces.
// These adapters read project files from the local filesystem.
//
// Adapters:
//   - VocabularyStore: TOML vocabulary file, re-read on every load
//   - CargoManifest: Binary names declared in Cargo.toml
package file
