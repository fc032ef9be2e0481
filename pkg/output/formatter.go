package output

import (
	"fmt"
	"io"

	"github.com/savesync/savesync/pkg/config"
	"github.com/savesync/savesync/pkg/models"
)

// Format names accepted by New.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formatter renders sync results and related reports.
// Implementations include human-readable, JSON and YAML formatters.
type Formatter interface {
	// SyncResult renders the outcome of a full synchronization run.
	SyncResult(result *models.SyncResult) error

	// Comparisons renders a comparison report without applying anything.
	Comparisons(localDir, cloudDir string, comparisons []models.FileComparison) error

	// DirectionalResult renders the outcome of a push or pull.
	DirectionalResult(result *models.DirectionalResult) error

	// Conflicts renders pending conflicts with both sides' details.
	Conflicts(conflicts []models.ConflictInfo) error

	// Games renders the configured game list.
	Games(games []*config.GameConfig) error

	// Name returns the formatter name.
	Name() string
}

// New returns the formatter for the given format name writing to w.
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case FormatHuman, "":
		return NewHumanFormatter(w), nil
	case FormatJSON:
		return NewJSONFormatter(w), nil
	case FormatYAML:
		return NewYAMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected human, json or yaml)", format)
	}
}
