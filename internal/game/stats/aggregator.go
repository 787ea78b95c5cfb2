// Package stats aggregates per-tier win statistics over a simulation run and
// renders the end-of-run report.
package stats

import (
	"github.com/cory-johannsen/megamillions/internal/game/lottery"
)

// TierStats accumulates observed results for one prize tier over a run.
type TierStats struct {
	// Count is the number of winning tickets in this tier.
	Count int
	// Total is the total payout for this tier in whole dollars.
	Total int64
}

// Aggregator tracks one TierStats per paying tier for a single run.
//
// A run is single-threaded; Aggregator is not safe for concurrent use.
//
// Invariant: sum of all tier counts <= Tickets(); sum of all tier totals ==
// TotalWon().
type Aggregator struct {
	tiers    map[lottery.Tier]*TierStats
	tickets  int
	totalWon int64
}

// NewAggregator returns an Aggregator with a zeroed TierStats for every
// paying tier.
func NewAggregator() *Aggregator {
	tiers := make(map[lottery.Tier]*TierStats, len(lottery.WinningTiers))
	for _, t := range lottery.WinningTiers {
		tiers[t] = &TierStats{}
	}
	return &Aggregator{tiers: tiers}
}

// Record accumulates one evaluated ticket. Non-winning tickets (TierNone)
// count toward Tickets() but mutate no tier.
//
// Precondition: payout must be the PrizeTable payout for tier.
func (a *Aggregator) Record(tier lottery.Tier, payout int64) {
	a.tickets++
	if tier == lottery.TierNone {
		return
	}
	s := a.tiers[tier]
	s.Count++
	s.Total += payout
	a.totalWon += payout
}

// Stats returns the accumulated stats for tier. Tiers never recorded report
// zero values.
func (a *Aggregator) Stats(tier lottery.Tier) TierStats {
	if s, ok := a.tiers[tier]; ok {
		return *s
	}
	return TierStats{}
}

// Tickets returns the number of recorded tickets, winning or not.
func (a *Aggregator) Tickets() int {
	return a.tickets
}

// TotalWon returns the total payout across all tiers in whole dollars.
func (a *Aggregator) TotalWon() int64 {
	return a.totalWon
}
