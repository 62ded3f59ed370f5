// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - VocabularyStore: Reads and validates vocabulary.toml
//   - Generator: Renders a vocabulary into a target language
//   - GeneratorRegistry: Selects a Generator by target name
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ManifestReader: Build manifest inspection. Without it, check skips the executable sync.
//   - Watcher: File watching. Without it, watch mode is unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or generator package
package driven
