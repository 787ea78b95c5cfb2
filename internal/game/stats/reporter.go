package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/cory-johannsen/megamillions/internal/game/lottery"
)

const tableWidth = 95

// Reporter renders the end-of-run summary and probability analysis to an
// injected writer.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter writing to w.
//
// Precondition: w must be non-nil.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// WriteSummary writes the spend/win summary block.
//
// Postcondition: return on spend is reported as 0.00% when totalSpent is 0;
// no division error is possible.
func (r *Reporter) WriteSummary(numTickets int, totalSpent float64, totalWon int64) {
	net := float64(totalWon) - totalSpent
	returnPct := 0.0
	if totalSpent > 0 {
		returnPct = float64(totalWon) / totalSpent * 100
	}

	fmt.Fprintf(r.w, "\nResults Summary:\n")
	fmt.Fprintf(r.w, "Total tickets purchased: %d\n", numTickets)
	fmt.Fprintf(r.w, "Total spent: $%.2f\n", totalSpent)
	fmt.Fprintf(r.w, "Total won: $%s\n", humanize.Comma(totalWon))
	fmt.Fprintf(r.w, "Net profit/loss: $%s\n", humanize.FormatFloat("#,###.##", net))
	fmt.Fprintf(r.w, "Return on spend: %.2f%%\n", returnPct)
}

// WriteProbabilityTable writes one observed-vs-expected row per paying tier,
// highest prize first.
//
// For each tier: expected = n*p, stddev = sqrt(n*p*(1-p)) (binomial
// approximation), and the Within 2σ flag reports |actual-expected| <= 2*stddev.
//
// Postcondition: diff% is reported as 0 when the expected count is 0; no
// division error is possible.
func (r *Reporter) WriteProbabilityTable(agg *Aggregator) {
	n := float64(agg.Tickets())
	rule := strings.Repeat("-", tableWidth)

	fmt.Fprintf(r.w, "\nProbability Analysis:\n")
	fmt.Fprintln(r.w, rule)
	fmt.Fprintf(r.w, "%-15s %-10s %-10s %-10s %-10s\n",
		"Match Type", "Expected", "Actual", "Diff %", "Within 2σ")
	fmt.Fprintln(r.w, rule)

	for _, tier := range lottery.WinningTiers {
		s := agg.Stats(tier)
		p := tier.Odds()
		expected := n * p
		stdDev := math.Sqrt(n * p * (1 - p))

		diffPct := 0.0
		if expected > 0 {
			diffPct = (float64(s.Count) - expected) / expected * 100
		}

		flag := "No"
		if math.Abs(float64(s.Count)-expected) <= 2*stdDev {
			flag = "Yes"
		}

		fmt.Fprintf(r.w, "%-15s %9.1f %9d %9.1f%% %9s\n",
			tier.Label(), expected, s.Count, diffPct, flag)
	}
}
