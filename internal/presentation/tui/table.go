package tui

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/aretw0/algotrace/pkg/complexity"
	"github.com/aretw0/algotrace/pkg/domain"
)

// HistoryTimeFormat is the timestamp layout of history tables.
const HistoryTimeFormat = "2006-01-02 15:04:05"

// ComplexityTable writes one row per algorithm.
func ComplexityTable(w io.Writer, infos []complexity.Info) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Algorithm", "Name", "Category", "Best", "Average", "Worst", "Space", "Stable", "In Place"})
	tbl.SetAutoWrapText(false)
	for _, info := range infos {
		tbl.Append([]string{
			info.ID.String(),
			info.Name,
			string(info.Category),
			info.TimeBest,
			info.TimeAverage,
			info.TimeWorst,
			info.Space,
			yesNo(info.Stable),
			yesNo(info.InPlace),
		})
	}
	tbl.Render()
}

// HistoryTable writes execution records as they are ordered in records.
func HistoryTable(w io.Writer, records []domain.ExecutionRecord) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"ID", "Algorithm", "Size", "Comparisons", "Swaps", "Time"})
	for _, r := range records {
		tbl.Append([]string{
			shortID(r.ID),
			r.AlgorithmName,
			strconv.Itoa(r.ArraySize),
			strconv.Itoa(r.Comparisons),
			strconv.Itoa(r.Swaps),
			r.Timestamp.Local().Format(HistoryTimeFormat),
		})
	}
	tbl.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
