// Package domain defines the core types of the vocabulary provider.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: The parsed vocabulary file, an open-ended table tree
//   - Vocabulary: The validated, typed view of a Document
//   - Binding: A convenience export mirroring one nested field
//   - Target: A code generation output format
//
// The reserved and internal module identifiers also live here, since both
// the core provider and every host adapter must agree on them.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
