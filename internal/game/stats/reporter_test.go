package stats_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/megamillions/internal/game/lottery"
	"github.com/cory-johannsen/megamillions/internal/game/stats"
)

// TestReporter_Summary_AllLosses verifies the summary block for ten losing
// tickets: net loss equals the spend and return on spend is 0.00%.
func TestReporter_Summary_AllLosses(t *testing.T) {
	var buf bytes.Buffer
	stats.NewReporter(&buf).WriteSummary(10, 20.00, 0)

	out := buf.String()
	assert.Contains(t, out, "Total tickets purchased: 10")
	assert.Contains(t, out, "Total spent: $20.00")
	assert.Contains(t, out, "Total won: $0")
	assert.Contains(t, out, "Net profit/loss: $-20.00")
	assert.Contains(t, out, "Return on spend: 0.00%")
}

// TestReporter_Summary_LargeWin verifies comma grouping of dollar amounts.
func TestReporter_Summary_LargeWin(t *testing.T) {
	var buf bytes.Buffer
	stats.NewReporter(&buf).WriteSummary(10, 20.00, 1_000_000)

	out := buf.String()
	assert.Contains(t, out, "Total won: $1,000,000")
	assert.Contains(t, out, "Net profit/loss: $999,980.00")
	assert.Contains(t, out, "Return on spend: 5000000.00%")
}

// TestReporter_Summary_ZeroSpend verifies the division guard: zero spend
// reports 0.00% return instead of failing.
func TestReporter_Summary_ZeroSpend(t *testing.T) {
	var buf bytes.Buffer
	require.NotPanics(t, func() {
		stats.NewReporter(&buf).WriteSummary(0, 0, 0)
	})
	assert.Contains(t, buf.String(), "Return on spend: 0.00%")
}

// TestReporter_ProbabilityTable_ZeroTickets verifies the expected=0 guard:
// every diff% renders as 0.0 and nothing divides by zero.
func TestReporter_ProbabilityTable_ZeroTickets(t *testing.T) {
	var buf bytes.Buffer
	agg := stats.NewAggregator()

	require.NotPanics(t, func() {
		stats.NewReporter(&buf).WriteProbabilityTable(agg)
	})

	for _, line := range tierRows(t, buf.String()) {
		assert.Contains(t, line, "0.0%", "diff%% must be 0 when expected is 0")
	}
}

// TestReporter_ProbabilityTable_Layout verifies the header, rule lines, and
// one row per paying tier in descending prize order.
func TestReporter_ProbabilityTable_Layout(t *testing.T) {
	var buf bytes.Buffer
	agg := stats.NewAggregator()
	for i := 0; i < 10; i++ {
		agg.Record(lottery.TierNone, 0)
	}
	stats.NewReporter(&buf).WriteProbabilityTable(agg)

	out := buf.String()
	assert.Contains(t, out, "Probability Analysis:")
	assert.Contains(t, out, "Match Type")
	assert.Contains(t, out, "Within 2σ")

	rows := tierRows(t, out)
	require.Len(t, rows, len(lottery.WinningTiers))
	assert.True(t, strings.HasPrefix(rows[0], "5 + Mega Ball"))
	assert.True(t, strings.HasPrefix(rows[len(rows)-1], "Mega Ball only"))
}

// TestReporter_ProbabilityTable_TwoSigmaFlag verifies the within-2σ flag:
// with 10 tickets, two mega-ball-only wins sit outside two standard
// deviations while one win sits inside.
func TestReporter_ProbabilityTable_TwoSigmaFlag(t *testing.T) {
	prizes := lottery.NewPrizeTable(lottery.DefaultJackpot)

	outlier := stats.NewAggregator()
	outlier.Record(lottery.TierMegaOnly, prizes.Payout(lottery.TierMegaOnly))
	outlier.Record(lottery.TierMegaOnly, prizes.Payout(lottery.TierMegaOnly))
	for i := 0; i < 8; i++ {
		outlier.Record(lottery.TierNone, 0)
	}

	var buf bytes.Buffer
	stats.NewReporter(&buf).WriteProbabilityTable(outlier)
	assert.Contains(t, megaOnlyRow(t, buf.String()), "No")

	typical := stats.NewAggregator()
	typical.Record(lottery.TierMegaOnly, prizes.Payout(lottery.TierMegaOnly))
	for i := 0; i < 9; i++ {
		typical.Record(lottery.TierNone, 0)
	}

	buf.Reset()
	stats.NewReporter(&buf).WriteProbabilityTable(typical)
	assert.Contains(t, megaOnlyRow(t, buf.String()), "Yes")
}

// tierRows returns the table rows that start with a tier label.
func tierRows(t *testing.T, out string) []string {
	t.Helper()
	var rows []string
	for _, line := range strings.Split(out, "\n") {
		for _, tier := range lottery.WinningTiers {
			if strings.HasPrefix(line, tier.Label()+" ") {
				rows = append(rows, line)
				break
			}
		}
	}
	return rows
}

func megaOnlyRow(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Mega Ball only") {
			return line
		}
	}
	t.Fatalf("no Mega Ball only row in output:\n%s", out)
	return ""
}
