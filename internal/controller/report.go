package controller

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/mouse-blink/minefield/internal/domain"
)

// RenderSimReport writes a table of batch simulation results.
func RenderSimReport(w io.Writer, args domain.SimArgs, result domain.SimResult) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"Board", fmt.Sprintf("%dx%d", args.Config.Cols, args.Config.Rows)})
	table.Append([]string{"Mines", fmt.Sprintf("%d", args.Mines)})
	table.Append([]string{"Games", fmt.Sprintf("%d", result.Games)})
	table.Append([]string{"Won", fmt.Sprintf("%d", result.Won)})
	table.Append([]string{"Lost", fmt.Sprintf("%d", result.Lost)})

	avgTurns := 0.0
	if result.Games > 0 {
		avgTurns = float64(result.Turns) / float64(result.Games)
	}

	table.SetFooter([]string{"Avg turns", fmt.Sprintf("%.1f", avgTurns)})

	table.Render()
	_, _ = fmt.Fprintf(w, "%s\n", tableBuffer.String())
}
