package driving

import "context"

// ModuleProvider is the virtual module contract a host build tool drives.
// The host always calls Resolve before Load for a given id.
type ModuleProvider interface {
	// Resolve maps the reserved id to the internal id.
	// Any other id returns ("", false) and is left to the host.
	Resolve(requestedID string) (string, bool)

	// Load returns the generated module text for the internal id.
	// Any other id returns ("", false, nil) without touching the disk.
	Load(ctx context.Context, id string) (string, bool, error)

	// SourcePath returns the file the module is generated from, for hosts
	// that track file dependencies.
	SourcePath() string
}
