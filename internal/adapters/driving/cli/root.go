// Package cli implements the vocab command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/custodia-labs/vocab/internal/core/ports/driving"
	"github.com/custodia-labs/vocab/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

var (
	rootDir string
	verbose bool
)

// Services injected by main (or by tests via SetServices).
var (
	moduleProvider    driving.ModuleProvider
	vocabularyService driving.VocabularyService
)

// Services groups the driving ports the commands use.
type Services struct {
	Provider   driving.ModuleProvider
	Vocabulary driving.VocabularyService
}

// ServiceFactory builds the services for a project root.
type ServiceFactory func(root string) (*Services, error)

var serviceFactory ServiceFactory

var rootCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Vocabulary virtual module provider",
	Long: `vocab serves vocabulary.toml as the virtual module "virtual:vocabulary".

The vocabulary file at the project root is the single source of truth for
application names, executable names, MCP tool descriptions and action verbs.
Bundles import it through the esbuild plugin; other languages use the
generated constants.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", ".", "project root containing vocabulary.toml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// envPrefix is the prefix of environment variables mirroring the persistent flags.
const envPrefix = "VOCAB"

// loadConfig layers the persistent flags over VOCAB_* environment variables.
// An explicitly set flag wins over the environment.
func loadConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	flags := cmd.Root().PersistentFlags()
	for _, name := range []string{"root", "verbose"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding %s flag: %w", name, err)
		}
	}

	rootDir = v.GetString("root")
	verbose = v.GetBool("verbose")
	return nil
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())
	logger.Debug("Project root: %s", rootDir)

	if serviceFactory == nil {
		return nil
	}
	services, err := serviceFactory(rootDir)
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}

// projectPath resolves a relative path against --root.
func projectPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootDir, path)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory installs the factory that builds services once flags are parsed.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetServices injects the services directly.
func SetServices(s *Services) {
	if s == nil {
		moduleProvider = nil
		vocabularyService = nil
		return
	}
	moduleProvider = s.Provider
	vocabularyService = s.Vocabulary
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute() error {
	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	)
}
