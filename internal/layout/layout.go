// Package layout fixes where the fixture files live and prepares the
// directories that hold them.
package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmrzaf/fixturegen/internal/domain"
)

const (
	dataDir          = "data"
	parquetDir       = "parquet"
	configDir        = "config"
	batchedOutputDir = "batched_output"

	parquetFile = "sample.parquet"
	configFile  = "sample.json"
)

// Layout is the set of output paths under one root directory.
type Layout struct {
	Root             string
	BaseDir          string
	ParquetDir       string
	ConfigDir        string
	BatchedOutputDir string
	ParquetPath      string
	ConfigPath       string
}

// New returns the layout for the sample fixture under root. An empty root
// means the working directory.
func New(root string) *Layout {
	if root == "" {
		root = "."
	}
	base := filepath.Join(root, dataDir, domain.SampleBaseName)
	l := &Layout{
		Root:             root,
		BaseDir:          base,
		ParquetDir:       filepath.Join(base, parquetDir),
		ConfigDir:        filepath.Join(base, configDir),
		BatchedOutputDir: filepath.Join(base, batchedOutputDir),
	}
	l.ParquetPath = filepath.Join(l.ParquetDir, parquetFile)
	l.ConfigPath = filepath.Join(l.ConfigDir, configFile)
	return l
}

// Dirs lists the directories Prepare creates, in creation order.
func (l *Layout) Dirs() []string {
	return []string{l.ParquetDir, l.ConfigDir, l.BatchedOutputDir}
}

// Prepare creates every output directory. Existing directories are fine.
func (l *Layout) Prepare() error {
	for _, dir := range l.Dirs() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
