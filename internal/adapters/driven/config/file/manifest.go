package file

import (
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/vocab/internal/core/domain"
	"github.com/custodia-labs/vocab/internal/core/ports/driven"
)

// Ensure CargoManifest implements the interface.
var _ driven.ManifestReader = (*CargoManifest)(nil)

// CargoManifest reads binary names from a Cargo.toml.
type CargoManifest struct{}

// NewCargoManifest creates a Cargo manifest reader.
func NewCargoManifest() *CargoManifest {
	return &CargoManifest{}
}

// cargoFile is the subset of Cargo.toml that declares binaries.
type cargoFile struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Bin []struct {
		Name string `toml:"name"`
	} `toml:"bin"`
}

// BinaryNames returns the package name followed by every [[bin]] name.
// The package name is included because Cargo builds a binary of that name
// from src/main.rs without a [[bin]] entry.
func (m *CargoManifest) BinaryNames(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var manifest cargoFile
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrParse, path, err)
	}

	names := make([]string, 0, len(manifest.Bin)+1)
	if manifest.Package.Name != "" {
		names = append(names, manifest.Package.Name)
	}
	for _, bin := range manifest.Bin {
		if bin.Name != "" {
			names = append(names, bin.Name)
		}
	}
	return names, nil
}
