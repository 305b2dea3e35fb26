package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nkorolko/castmatch/assign"
	"github.com/nkorolko/castmatch/score"
)

// Render formats a solved casting: a summary header, the assignment
// table sorted by rank (then participant, for stable output), and a
// rank-distribution footer with first-choice and top-3 counts.
//
// The sort relies on the solver's guarantee that Details carries the
// rank for every matched pair and that Total equals the detail sum.
func Render(res assign.Result, policy score.Policy) string {
	var b strings.Builder

	b.WriteString("OPTIMAL CASTING\n")
	fmt.Fprintf(&b, "scoring: %s\n", policy)
	fmt.Fprintf(&b, "total satisfaction: %d\n", res.Total)
	if len(res.Details) > 0 {
		fmt.Fprintf(&b, "mean per participant: %.1f\n",
			float64(res.Total)/float64(len(res.Details)))
	}

	if len(res.Details) == 0 {
		b.WriteString("no participants\n")

		return b.String()
	}

	// Sort a copy by rank, then participant; the Result stays ordered
	// by participant index for everyone else.
	details := append([]assign.Detail(nil), res.Details...)
	sort.SliceStable(details, func(i, j int) bool {
		if details[i].Rank != details[j].Rank {
			return details[i].Rank < details[j].Rank
		}

		return details[i].Participant < details[j].Participant
	})

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Participant", "Role", "Rank", "Utility"})
	for _, d := range details {
		tw.AppendRow(table.Row{d.Participant, d.Role, fmt.Sprintf("#%d", d.Rank), d.Utility})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	b.WriteString(tw.Render())
	b.WriteByte('\n')

	writeRankStats(&b, details)

	return b.String()
}

// writeRankStats appends the rank distribution and the first-choice /
// top-3 tallies.
func writeRankStats(b *strings.Builder, details []assign.Detail) {
	counts := map[int]int{}
	maxRank := 0
	for _, d := range details {
		counts[d.Rank]++
		if d.Rank > maxRank {
			maxRank = d.Rank
		}
	}

	b.WriteString("rank distribution:\n")
	topThree := 0
	for rank := 1; rank <= maxRank; rank++ {
		if counts[rank] == 0 {
			continue
		}
		fmt.Fprintf(b, "  rank #%d: %d\n", rank, counts[rank])
		if rank <= 3 {
			topThree += counts[rank]
		}
	}
	fmt.Fprintf(b, "first choice: %d of %d\n", counts[1], len(details))
	fmt.Fprintf(b, "top 3 choices: %d of %d\n", topThree, len(details))
}

// RenderConstraints formats a CheckConstraints outcome against the
// threshold it was checked with.
func RenderConstraints(satisfied bool, violations []assign.Violation, maxRank int) string {
	if satisfied {
		return fmt.Sprintf("all participants within rank %d\n", maxRank)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d participant(s) beyond rank %d:\n", len(violations), maxRank)
	for _, v := range violations {
		fmt.Fprintf(&b, "  %s got rank %d choice (%s)\n", v.Participant, v.Rank, v.Role)
	}

	return b.String()
}
