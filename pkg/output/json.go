package output

import (
	"encoding/json"
	"io"

	"github.com/savesync/savesync/pkg/config"
	"github.com/savesync/savesync/pkg/models"
)

// JSONFormatter formats output as JSON for automation and scripting.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter writing to w.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

func (f *JSONFormatter) encode(v any) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// comparisonReport wraps a comparison listing with its directory context.
type comparisonReport struct {
	LocalDir    string                  `json:"local_dir" yaml:"local_dir"`
	CloudDir    string                  `json:"cloud_dir" yaml:"cloud_dir"`
	Comparisons []models.FileComparison `json:"comparisons" yaml:"comparisons"`
}

// SyncResult renders the outcome of a full synchronization run.
func (f *JSONFormatter) SyncResult(result *models.SyncResult) error {
	return f.encode(result)
}

// Comparisons renders a comparison report without applying anything.
func (f *JSONFormatter) Comparisons(localDir, cloudDir string, comparisons []models.FileComparison) error {
	return f.encode(comparisonReport{LocalDir: localDir, CloudDir: cloudDir, Comparisons: comparisons})
}

// DirectionalResult renders the outcome of a push or pull.
func (f *JSONFormatter) DirectionalResult(result *models.DirectionalResult) error {
	return f.encode(result)
}

// Conflicts renders pending conflicts with both sides' details.
func (f *JSONFormatter) Conflicts(conflicts []models.ConflictInfo) error {
	return f.encode(conflicts)
}

// Games renders the configured game list.
func (f *JSONFormatter) Games(games []*config.GameConfig) error {
	return f.encode(games)
}

// Name returns the formatter name.
func (f *JSONFormatter) Name() string {
	return FormatJSON
}
