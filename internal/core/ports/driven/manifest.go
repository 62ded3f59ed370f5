package driven

import "context"

// ManifestReader lists the binary target names declared by a build manifest.
type ManifestReader interface {
	// BinaryNames returns the declared binary names.
	// A missing manifest returns an error satisfying errors.Is(err, fs.ErrNotExist).
	BinaryNames(ctx context.Context, path string) ([]string, error)
}
