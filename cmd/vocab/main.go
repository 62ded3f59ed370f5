// vocab serves vocabulary.toml as the virtual module "virtual:vocabulary"
// and generates code from it.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/vocab/internal/adapters/driven/config/file"
	"github.com/custodia-labs/vocab/internal/adapters/driven/fsnotify"
	"github.com/custodia-labs/vocab/internal/adapters/driving/cli"
	"github.com/custodia-labs/vocab/internal/core/services"
	"github.com/custodia-labs/vocab/internal/generators"
	"github.com/custodia-labs/vocab/internal/generators/esm"
)

// version is set via -ldflags at release time.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(newServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// newServices wires the adapters for a project root.
func newServices(root string) (*cli.Services, error) {
	store, err := file.NewVocabularyStore(root)
	if err != nil {
		return nil, fmt.Errorf("opening project: %w", err)
	}

	registry := generators.NewDefaultRegistry()

	return &cli.Services{
		Provider: services.NewModuleProvider(store, esm.New()),
		Vocabulary: services.NewVocabularyService(
			store,
			registry,
			file.NewCargoManifest(),
			fsnotify.NewWatcher(),
		),
	}, nil
}
