package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/savesync/savesync/pkg/config"
	"github.com/savesync/savesync/pkg/models"
)

// YAMLFormatter formats output as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter writing to w.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

func (f *YAMLFormatter) encode(v any) error {
	enc := yaml.NewEncoder(f.writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// SyncResult renders the outcome of a full synchronization run.
func (f *YAMLFormatter) SyncResult(result *models.SyncResult) error {
	return f.encode(result)
}

// Comparisons renders a comparison report without applying anything.
func (f *YAMLFormatter) Comparisons(localDir, cloudDir string, comparisons []models.FileComparison) error {
	return f.encode(comparisonReport{LocalDir: localDir, CloudDir: cloudDir, Comparisons: comparisons})
}

// DirectionalResult renders the outcome of a push or pull.
func (f *YAMLFormatter) DirectionalResult(result *models.DirectionalResult) error {
	return f.encode(result)
}

// Conflicts renders pending conflicts with both sides' details.
func (f *YAMLFormatter) Conflicts(conflicts []models.ConflictInfo) error {
	return f.encode(conflicts)
}

// Games renders the configured game list.
func (f *YAMLFormatter) Games(games []*config.GameConfig) error {
	return f.encode(games)
}

// Name returns the formatter name.
func (f *YAMLFormatter) Name() string {
	return FormatYAML
}
