package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
	"github.com/samber/lo"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// Render renders the list of known networks, marking the selected one
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row{"", "Network", "Chain", "API", "Explorer"})
	for _, status := range result.Networks {
		marker := lo.Ternary(status.Active, color.New(color.FgGreen).Sprint("*"), "")
		n := status.Network
		t.AppendRow(table.Row{marker, n.Name, n.ChainID, n.APIURL, n.ExplorerURL})
	}
	fmt.Fprintln(r.out, t.Render())

	if _, ok := lo.Find(result.Networks, func(s usecase.NetworkStatus) bool { return s.Active }); !ok {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning("The configured chain id does not match a known network"))
	}
	return nil
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
