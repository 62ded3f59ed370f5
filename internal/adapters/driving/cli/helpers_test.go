package cli

import (
	"bytes"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/vocab/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/vocab/internal/core/domain"
	"github.com/custodia-labs/vocab/internal/core/services"
	"github.com/custodia-labs/vocab/internal/generators"
	"github.com/custodia-labs/vocab/internal/generators/esm"
)

func testDocument() domain.Document {
	tool := func(id, name string) map[string]any {
		return map[string]any{"id": id, "name": name, "description": name + " tool"}
	}
	return domain.Document{
		"app": map[string]any{
			"name_zh":     "测试",
			"name_en":     "Test",
			"description": "A test app",
		},
		"executables": map[string]any{
			"gui_name":        "test-gui",
			"mcp_server_name": "test-mcp",
		},
		"mcp_tools": map[string]any{
			"interaction": tool("zhi", "Interaction"),
			"memory":      tool("ji", "Memory"),
			"search":      tool("sou", "Search"),
		},
		"actions": map[string]any{
			"memory_add":    "remember",
			"memory_recall": "recall",
		},
	}
}

// setupTestServices injects services backed by an in-memory store and
// returns the store plus a cleanup func restoring the previous state.
func setupTestServices(doc domain.Document) (*memory.VocabularyStore, func()) {
	store := memory.NewVocabularyStore("/project/vocabulary.toml", doc)
	SetServices(&Services{
		Provider:   services.NewModuleProvider(store, esm.New()),
		Vocabulary: services.NewVocabularyService(store, generators.NewDefaultRegistry(), nil, nil),
	})

	return store, func() {
		SetServices(nil)
		resetFlags()
	}
}

// resetFlags restores every flag to its default, since flag values and
// their Changed state survive between Execute calls.
func resetFlags() {
	var reset func(cmd *cobra.Command)
	reset = func(cmd *cobra.Command) {
		visit := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		cmd.PersistentFlags().VisitAll(visit)
		cmd.Flags().VisitAll(visit)
		for _, sub := range cmd.Commands() {
			reset(sub)
		}
	}
	reset(rootCmd)
}

// execute runs the root command with args and returns stdout and stderr.
func execute(args ...string) (string, string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
