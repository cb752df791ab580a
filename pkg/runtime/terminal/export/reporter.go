package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pythonzzgr/bazi-analysis/pkg/adapters"
	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
	"github.com/pythonzzgr/bazi-analysis/pkg/services/analysis"
)

// Format selects the output rendering of a report.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q, expected text, json or yaml", s)
	}
}

type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// Handle writes the report in the requested format. JSON and YAML carry
// the full API payload; text is the human-readable document.
func (c *Reporter) Handle(report *domain.Report, format Format) error {
	switch format {
	case FormatJSON, FormatYAML:
		payload := adapters.MapReportDomainToApi(report, analysis.RenderText(report))
		if format == FormatJSON {
			enc := json.NewEncoder(c.writer)
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		}
		// Round-trip through JSON so the YAML keys match the JSON
		// field names.
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		var tree map[string]any
		if err := json.Unmarshal(raw, &tree); err != nil {
			return fmt.Errorf("failed to rebuild report tree: %w", err)
		}
		return yaml.NewEncoder(c.writer).Encode(tree)
	default:
		_, err := io.WriteString(c.writer, analysis.RenderText(report))
		return err
	}
}
