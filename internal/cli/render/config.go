package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
	"gopkg.in/yaml.v3"
)

// Output formats for the config command
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out    io.Writer
	format string
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer, format string) *ConfigRenderer {
	return &ConfigRenderer{
		out:    out,
		format: format,
	}
}

// configDocument is the YAML form of the resolved configuration
type configDocument struct {
	ProjectRoot string                `yaml:"project_root"`
	Network     string                `yaml:"network,omitempty"`
	Settings    []usecase.ConfigEntry `yaml:"settings"`
}

// Render renders the configuration display
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	switch r.format {
	case "", FormatTable:
		return r.renderTable(result)
	case FormatYAML:
		return r.renderYAML(result)
	default:
		return fmt.Errorf("unsupported output format %q (use %s or %s)", r.format, FormatTable, FormatYAML)
	}
}

func (r *ConfigRenderer) renderTable(result *usecase.ShowConfigResult) error {
	fmt.Fprintf(r.out, "📁 Project root: %s\n", result.ProjectRoot)
	if result.Network == nil {
		fmt.Fprintln(r.out, FormatWarning("Chain id does not match a known network"))
	}
	fmt.Fprintln(r.out)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})
	t.AppendHeader(table.Row{"Setting", "Value", "Source"})
	for _, entry := range result.Entries {
		t.AppendRow(table.Row{entry.Key, entry.Value, sourceLabel(entry)})
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

func (r *ConfigRenderer) renderYAML(result *usecase.ShowConfigResult) error {
	doc := configDocument{
		ProjectRoot: result.ProjectRoot,
		Settings:    result.Entries,
	}
	if result.Network != nil {
		doc.Network = result.Network.Name
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

// sourceLabel colors values that were overridden by the operator
func sourceLabel(entry usecase.ConfigEntry) string {
	switch entry.Source {
	case config.SourceEnv:
		label := string(entry.Source)
		if entry.EnvVar != "" {
			label = fmt.Sprintf("%s (%s)", label, entry.EnvVar)
		}
		return color.New(color.FgYellow).Sprint(label)
	case config.SourceFlag:
		return color.New(color.FgYellow).Sprint(string(entry.Source))
	case config.SourceFile:
		return color.New(color.FgCyan).Sprint(string(entry.Source))
	default:
		return string(entry.Source)
	}
}

var _ Renderer[*usecase.ShowConfigResult] = (*ConfigRenderer)(nil)
