package stats

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

// RenderPolysemy writes the polysemy class distribution as a table.
func RenderPolysemy(w io.Writer, classes []PolysemyClass) {
	table := newTable(w, "polysemy", "lemmas", "%")
	for _, c := range classes {
		table.Append([]string{
			strconv.Itoa(c.Senses),
			strconv.Itoa(c.Lemmas),
			strconv.FormatFloat(c.Percent, 'f', 2, 64),
		})
	}
	table.Render()
}

// RenderFrequencies writes an attribute distribution as a table.
func RenderFrequencies(w io.Writer, st AttributeStats) {
	table := newTable(w, strings.Join(st.Attributes, "-"), "frequency")
	for _, f := range st.Frequencies {
		table.Append([]string{f.Key(), strconv.Itoa(f.Count)})
	}
	table.SetFooter([]string{"unique " + strconv.Itoa(st.Unique), "total " + strconv.Itoa(st.Count)})
	table.Render()
}
