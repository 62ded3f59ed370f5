package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"

	retry "github.com/avast/retry-go/v5"
	"github.com/cespare/xxhash/v2"

	"github.com/custodia-labs/vocab/internal/core/domain"
	"github.com/custodia-labs/vocab/internal/core/ports/driven"
	"github.com/custodia-labs/vocab/internal/core/ports/driving"
	"github.com/custodia-labs/vocab/internal/logger"
)

// Ensure VocabularyService implements the interface.
var _ driving.VocabularyService = (*VocabularyService)(nil)

// ErrWatchUnavailable is returned by Watch when no watcher is configured.
var ErrWatchUnavailable = errors.New("file watching is not configured")

// Retry settings for reloading after a change event.
const (
	settleAttempts = 3
	settleDelay    = 50 * time.Millisecond
)

// VocabularyService loads, checks and renders the vocabulary file.
type VocabularyService struct {
	store      driven.VocabularyStore
	generators driven.GeneratorRegistry
	manifest   driven.ManifestReader
	watcher    driven.Watcher
}

// NewVocabularyService creates a new vocabulary service.
// manifest and watcher may be nil.
func NewVocabularyService(
	store driven.VocabularyStore,
	generators driven.GeneratorRegistry,
	manifest driven.ManifestReader,
	watcher driven.Watcher,
) *VocabularyService {
	return &VocabularyService{
		store:      store,
		generators: generators,
		manifest:   manifest,
		watcher:    watcher,
	}
}

// Document loads and validates the vocabulary file.
func (s *VocabularyService) Document(ctx context.Context) (*domain.VocabularyFile, error) {
	return s.store.Load(ctx)
}

// Generate renders the vocabulary for target.
func (s *VocabularyService) Generate(ctx context.Context, target domain.Target, opts map[string]any) (string, error) {
	gen, err := s.buildGenerator(target, opts)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, gen)
}

func (s *VocabularyService) buildGenerator(target domain.Target, opts map[string]any) (driven.Generator, error) {
	if !s.generators.Has(target) {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			domain.ErrUnknownTarget, target, strings.Join(s.generators.Names(), ", "))
	}
	return s.generators.Build(target, opts)
}

func (s *VocabularyService) generate(ctx context.Context, gen driven.Generator) (string, error) {
	logger.Section("Generate " + gen.Name())
	logger.Debug("Source: %s", s.store.Path())

	file, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}

	out, err := gen.Generate(ctx, file)
	if err != nil {
		return "", err
	}

	logger.Debug("Generated %d bytes", len(out))
	return out, nil
}

// Check validates the vocabulary and compares its executable names with the
// binaries declared in manifestPath. A missing manifest is reported in the
// result, not as an error.
func (s *VocabularyService) Check(ctx context.Context, manifestPath string) (*driving.CheckReport, error) {
	file, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := &driving.CheckReport{
		Path:         file.Path,
		ManifestPath: manifestPath,
	}
	if s.manifest == nil || manifestPath == "" {
		return report, nil
	}

	names, err := s.manifest.BinaryNames(ctx, manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("Manifest %s not found, skipping executable check", manifestPath)
			return report, nil
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	report.ManifestFound = true

	exec := file.Vocabulary.Executables
	if !slices.Contains(names, exec.GUIName) {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"GUI executable name in %s (%q) does not match %s; update the [[bin]] name",
			domain.VocabularyFileName, exec.GUIName, manifestPath))
	}
	if !slices.Contains(names, exec.MCPServerName) {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"MCP server executable name in %s (%q) does not match %s; update the [[bin]] name",
			domain.VocabularyFileName, exec.MCPServerName, manifestPath))
	}

	for _, w := range report.Warnings {
		logger.Warn("%s", w)
	}
	return report, nil
}

// Watch renders target after every change to the vocabulary file until ctx
// is cancelled, starting with one render immediately. Output identical to
// the previous render is not reported again; errors always are.
func (s *VocabularyService) Watch(
	ctx context.Context,
	target domain.Target,
	opts map[string]any,
	onResult func(string, error),
) error {
	if s.watcher == nil {
		return ErrWatchUnavailable
	}

	gen, err := s.buildGenerator(target, opts)
	if err != nil {
		return err
	}

	var last uint64
	emit := func(out string, err error) {
		if err != nil {
			last = 0
			onResult("", err)
			return
		}
		sum := xxhash.Sum64String(out)
		if sum == last {
			logger.Debug("Output unchanged, skipping")
			return
		}
		last = sum
		onResult(out, nil)
	}

	emit(s.generate(ctx, gen))

	return s.watcher.Watch(ctx, s.store.Path(), func() {
		logger.Info("%s changed, regenerating", s.store.Path())
		emit(s.generateSettled(ctx, gen))
	})
}

// generateSettled retries file access errors briefly. Editors that save by
// renaming leave a short window in which the file does not exist.
func (s *VocabularyService) generateSettled(ctx context.Context, gen driven.Generator) (string, error) {
	return retry.NewWithData[string](
		retry.Context(ctx),
		retry.Attempts(settleAttempts),
		retry.Delay(settleDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, domain.ErrFileAccess)
		}),
		retry.OnRetry(func(n uint, err error) {
			logger.Debug("Retry %d after: %v", n+1, err)
		}),
	).Do(func() (string, error) {
		return s.generate(ctx, gen)
	})
}
