package lottery

// MatchResult describes how a ticket compared against the winning draw.
type MatchResult struct {
	// WhiteMatches is the size of the white-ball intersection, 0 to WhitePicks.
	WhiteMatches int
	// MegaMatch reports whether the ticket's mega ball equals the drawn one.
	MegaMatch bool
}

// Match computes the overlap between a ticket and the winning draw.
//
// Postcondition: 0 <= result.WhiteMatches <= min(len(ticket.Whites), len(draw.Whites)).
func Match(ticket, draw Ticket) MatchResult {
	drawn := make(map[int]bool, len(draw.Whites))
	for _, w := range draw.Whites {
		drawn[w] = true
	}

	matches := 0
	for _, w := range ticket.Whites {
		if drawn[w] {
			matches++
		}
	}

	return MatchResult{
		WhiteMatches: matches,
		MegaMatch:    ticket.Mega == draw.Mega,
	}
}

// Tier returns the prize tier for this match outcome.
func (m MatchResult) Tier() Tier {
	return TierFor(m.WhiteMatches, m.MegaMatch)
}
