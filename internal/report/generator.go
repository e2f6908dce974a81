package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/fintrack/internal/logging"

	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Generator renders monthly reports in various formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Generator{
		logger: logger.WithField(logging.FieldComponent, logging.ComponentReport),
	}
}

// Generate renders r in format (text, json or yaml).
func (g *Generator) Generate(r *MonthlyReport, format string) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("cannot render nil report")
	}

	g.logger.Debug("Rendering report",
		logging.F(logging.FieldUsername, r.Username),
		logging.F(logging.FieldMonth, r.Month),
		logging.F(logging.FieldFormat, format))

	switch strings.ToLower(format) {
	case FormatText, "":
		return []byte(r.text()), nil
	case FormatJSON:
		return g.generateJSON(r)
	case FormatYAML, "yml":
		return g.generateYAML(r)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(r *MonthlyReport) ([]byte, error) {
	out, err := json.MarshalIndent(r.document(), "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *Generator) generateYAML(r *MonthlyReport) ([]byte, error) {
	out, err := yaml.Marshal(r.document())
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}
