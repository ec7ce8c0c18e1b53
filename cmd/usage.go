package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/tradeassess/internal/llm"
)

// printUsage writes the run's LLM token usage and estimated cost.
func printUsage(w io.Writer, u *llm.UsageTracker) {
	stats := u.ByPurpose()
	if len(stats) == 0 {
		fmt.Fprintln(w, "No LLM usage recorded.")
		return
	}

	fmt.Fprintln(w, "Usage by Purpose")
	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "%-16s  %6s  %8s  %10s  %10s  %10s\n",
		"Purpose", "Calls", "Failed", "Input", "Output", "Total")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	var totalCalls, totalFailed, totalIn, totalOut int
	for _, st := range stats {
		fmt.Fprintf(w, "%-16s  %6d  %8d  %10d  %10d  %10d\n",
			st.Key, st.Calls, st.Failures, st.InputTokens, st.OutputTokens, st.InputTokens+st.OutputTokens)
		totalCalls += st.Calls
		totalFailed += st.Failures
		totalIn += st.InputTokens
		totalOut += st.OutputTokens
	}

	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "%-16s  %6d  %8d  %10d  %10d  %10d\n",
		"TOTAL", totalCalls, totalFailed, totalIn, totalOut, totalIn+totalOut)

	cost := u.Cost()
	if len(cost.Models) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Estimated Cost (USD)")
	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n",
		"Model", "Calls", "Input", "Output", "Cost")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	for _, m := range cost.Models {
		c := "?"
		if m.Known {
			c = formatCost(m.Cost)
		}
		fmt.Fprintf(w, "%-32s  %6d  %10d  %10d  %10s\n",
			truncate(m.Key, 32), m.Calls, m.InputTokens, m.OutputTokens, c)
	}

	fmt.Fprintln(w, strings.Repeat("─", 72))
	label := "TOTAL"
	if len(cost.Unknown) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n",
		label, "", "", "", formatCost(cost.Total))

	if len(cost.Unknown) > 0 {
		fmt.Fprintf(w, "\nPricing unavailable for: %s\n", strings.Join(cost.Unknown, ", "))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
