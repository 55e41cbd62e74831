package app

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/mmrzaf/fixturegen/internal/domain"
	"github.com/mmrzaf/fixturegen/internal/exec"
	"github.com/mmrzaf/fixturegen/internal/hashing"
	"github.com/mmrzaf/fixturegen/internal/infra/parquetio"
	"github.com/mmrzaf/fixturegen/internal/infra/sidecar"
	"github.com/mmrzaf/fixturegen/internal/infra/targets"
	"github.com/mmrzaf/fixturegen/internal/layout"
	"github.com/mmrzaf/fixturegen/internal/logging"
	"github.com/mmrzaf/fixturegen/internal/registry"
	"github.com/mmrzaf/fixturegen/internal/report"
	"github.com/mmrzaf/fixturegen/internal/validation"
)

// Result describes one completed fixture run.
type Result struct {
	Table        *domain.Table
	Config       *domain.TableConfig
	Layout       *layout.Layout
	Stats        *domain.RunStats
	ConfigDigest string
}

type FixtureService struct {
	validator *validation.Validator
	executor  *exec.Executor
	reporter  *report.Reporter
	logger    *logging.Logger
}

// NewFixtureService wires the pipeline. Progress lines go to out; a nil out
// discards them.
func NewFixtureService(genRegistry *registry.GeneratorRegistry, out io.Writer, logger *logging.Logger) *FixtureService {
	if out == nil {
		out = io.Discard
	}
	return &FixtureService{
		validator: validation.NewValidator(genRegistry),
		executor:  exec.NewExecutor(genRegistry),
		reporter:  report.NewReporter(out),
		logger:    logger.WithComponent("fixture"),
	}
}

// Sample generates the sample table in memory without touching the
// filesystem.
func (s *FixtureService) Sample() (*domain.Table, *domain.RunStats, error) {
	plan := exec.SamplePlan()
	if err := s.validator.ValidatePlan(plan); err != nil {
		return nil, nil, fmt.Errorf("invalid sample plan: %w", err)
	}
	return s.executor.Generate(plan, exec.SampleSeed, exec.SampleRows)
}

// Create writes the sample fixture under root: directories first, then the
// parquet file, then the JSON sidecar. Existing files are overwritten.
func (s *FixtureService) Create(root string) (*Result, error) {
	startTime := time.Now()
	s.reporter.Start()

	lay := layout.New(root)
	if err := lay.Prepare(); err != nil {
		return nil, err
	}
	s.logger.Debugw("directories_ready", map[string]any{"base_dir": lay.BaseDir})

	table, stats, err := s.Sample()
	if err != nil {
		return nil, fmt.Errorf("failed to generate sample: %w", err)
	}

	digest, err := hashing.HashTable(table)
	if err != nil {
		return nil, fmt.Errorf("failed to hash table: %w", err)
	}
	stats.RunID = uuid.NewString()
	stats.Digest = digest

	metadata := map[string]string{
		parquetio.MetadataRunID:  stats.RunID,
		parquetio.MetadataDigest: stats.Digest,
	}
	if err := parquetio.WriteTable(lay.ParquetPath, table, metadata); err != nil {
		return nil, err
	}
	s.reporter.SavedParquet(lay.ParquetPath)

	cfg := domain.SampleTableConfig()
	if err := validation.ValidateTableConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid table config: %w", err)
	}
	configDigest, err := hashing.HashTableConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to hash table config: %w", err)
	}
	if err := sidecar.Write(lay.ConfigPath, cfg); err != nil {
		return nil, err
	}
	s.reporter.SavedConfig(lay.ConfigPath)

	stats.DurationSeconds = time.Since(startTime).Seconds()
	s.reporter.Done()

	s.logger.Infow("fixture_written", map[string]any{
		"run_id":        stats.RunID,
		"rows":          stats.TotalRows,
		"digest":        stats.Digest,
		"config_digest": configDigest,
		"parquet_path":  lay.ParquetPath,
		"config_path":   lay.ConfigPath,
		"duration_s":    stats.DurationSeconds,
	})

	return &Result{
		Table:        table,
		Config:       cfg,
		Layout:       lay,
		Stats:        stats,
		ConfigDigest: configDigest,
	}, nil
}

// Export generates the sample table and loads it into t. It returns the
// number of rows inserted.
func (s *FixtureService) Export(t *domain.ExportTarget) (int64, error) {
	if err := validation.ValidateExportTarget(t); err != nil {
		return 0, fmt.Errorf("target validation failed: %w", err)
	}

	table, _, err := s.Sample()
	if err != nil {
		return 0, fmt.Errorf("failed to generate sample: %w", err)
	}

	effective := resolveTarget(t, "")
	tgt, err := targets.New(effective)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Exporting %d rows to %s target %s (table=%s, mode=%s)",
		table.NumRows(), effective.Kind, targets.RedactDSN(effective.DSN), effective.Table, effective.Mode)

	n, err := targets.Load(tgt, effective.Table, effective.Mode, table)
	if err != nil {
		s.logger.Errorw("export_failed", map[string]any{"kind": effective.Kind, "error": err})
		return n, err
	}

	s.logger.Infow("export_complete", map[string]any{"kind": effective.Kind, "table": effective.Table, "rows": n})
	return n, nil
}
