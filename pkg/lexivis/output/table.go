package output

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/cognicore/lexivis/pkg/lexivis/analytics"
)

// SummaryTable renders the first perChapter records of every chapter as
// a terminal table. labels name the chapters (usually file paths); missing
// labels fall back to the chapter number.
func SummaryTable(chapters [][]analytics.Record, labels []string, perChapter int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Chapter", "Word", "Freq", "Uniqueness", "Pos"})

	for i, records := range chapters {
		label := strconv.Itoa(i + 1)
		if i < len(labels) && labels[i] != "" {
			label = filepath.Base(labels[i])
		}
		if len(records) == 0 {
			tw.AppendRow(table.Row{label, "(no words)", "", "", ""})
			tw.AppendSeparator()
			continue
		}
		limit := len(records)
		if perChapter > 0 && limit > perChapter {
			limit = perChapter
		}
		for j, r := range records[:limit] {
			name := ""
			if j == 0 {
				name = label
			}
			tw.AppendRow(table.Row{name, r.Word, fmtScore(r.Freq), fmtScore(r.Uniqueness), fmtScore(r.Pos)})
		}
		tw.AppendSeparator()
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func fmtScore(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
