package lottery

// Tier identifies a Mega Millions prize category. TierNone marks a
// non-winning ticket.
//
// A Tier is derived only through TierFor; display labels are produced from
// the Tier and never parsed back, so payout lookup and labelling cannot
// disagree on tier boundaries.
type Tier int

// Tiers in ascending prize order.
const (
	TierNone Tier = iota
	TierMegaOnly  // mega ball only
	TierOneMega   // 1 white + mega ball
	TierTwoMega   // 2 whites + mega ball
	TierThree     // 3 whites
	TierThreeMega // 3 whites + mega ball
	TierFour      // 4 whites
	TierFourMega  // 4 whites + mega ball
	TierFive      // 5 whites
	TierJackpot   // 5 whites + mega ball
)

// WinningTiers lists the nine paying tiers in reporting order, highest
// prize first.
var WinningTiers = [9]Tier{
	TierJackpot,
	TierFive,
	TierFourMega,
	TierFour,
	TierThreeMega,
	TierThree,
	TierTwoMega,
	TierOneMega,
	TierMegaOnly,
}

// TierFor maps a match outcome to its prize tier.
//
// Precondition: 0 <= whiteMatches <= WhitePicks.
// Postcondition: combinations outside the paying table map to TierNone.
func TierFor(whiteMatches int, megaMatch bool) Tier {
	if megaMatch {
		switch whiteMatches {
		case 0:
			return TierMegaOnly
		case 1:
			return TierOneMega
		case 2:
			return TierTwoMega
		case 3:
			return TierThreeMega
		case 4:
			return TierFourMega
		case 5:
			return TierJackpot
		}
		return TierNone
	}
	switch whiteMatches {
	case 3:
		return TierThree
	case 4:
		return TierFour
	case 5:
		return TierFive
	}
	return TierNone
}

// Label returns the human-readable tier name, e.g. "4 + Mega Ball".
func (t Tier) Label() string {
	switch t {
	case TierJackpot:
		return "5 + Mega Ball"
	case TierFive:
		return "5"
	case TierFourMega:
		return "4 + Mega Ball"
	case TierFour:
		return "4"
	case TierThreeMega:
		return "3 + Mega Ball"
	case TierThree:
		return "3"
	case TierTwoMega:
		return "2 + Mega Ball"
	case TierOneMega:
		return "1 + Mega Ball"
	case TierMegaOnly:
		return "Mega Ball only"
	default:
		return "no win"
	}
}

// Odds returns the official published probability of landing exactly in t.
//
// Postcondition: positive for every paying tier; 0 for TierNone.
func (t Tier) Odds() float64 {
	switch t {
	case TierJackpot:
		return 1.0 / 302_575_350
	case TierFive:
		return 1.0 / 12_607_306
	case TierFourMega:
		return 1.0 / 931_001
	case TierFour:
		return 1.0 / 38_792
	case TierThreeMega:
		return 1.0 / 14_547
	case TierThree:
		return 1.0 / 606
	case TierTwoMega:
		return 1.0 / 693
	case TierOneMega:
		return 1.0 / 89
	case TierMegaOnly:
		return 1.0 / 37
	default:
		return 0
	}
}

// PrizeTable holds the fixed payout schedule. Only the jackpot varies between
// runs; it tracks the advertised rollover amount.
type PrizeTable struct {
	// Jackpot is the top-prize amount in whole dollars.
	Jackpot int64
}

// NewPrizeTable returns a PrizeTable paying jackpot for TierJackpot.
//
// Precondition: jackpot > 0.
func NewPrizeTable(jackpot int64) PrizeTable {
	return PrizeTable{Jackpot: jackpot}
}

// Payout returns the prize in whole dollars for t. The table is total and
// deterministic: every Tier has a defined payout and TierNone pays 0.
func (p PrizeTable) Payout(t Tier) int64 {
	switch t {
	case TierJackpot:
		return p.Jackpot
	case TierFive:
		return 1_000_000
	case TierFourMega:
		return 10_000
	case TierFour:
		return 500
	case TierThreeMega:
		return 200
	case TierThree:
		return 10
	case TierTwoMega:
		return 10
	case TierOneMega:
		return 4
	case TierMegaOnly:
		return 2
	default:
		return 0
	}
}
