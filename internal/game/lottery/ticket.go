// Package lottery implements the Mega Millions game model: tickets, the
// winning draw, prize tiers, and match evaluation.
//
// The rules, payouts, and odds follow the official game:
// https://www.megamillions.com/How-to-Play.aspx
package lottery

import (
	"fmt"
)

// Official game parameters.
const (
	// WhiteBallMax is the top of the white-ball range [1, WhiteBallMax].
	WhiteBallMax = 70
	// WhitePicks is the number of distinct white balls per ticket.
	WhitePicks = 5
	// MegaBallMax is the top of the mega-ball range [1, MegaBallMax].
	MegaBallMax = 25

	// DefaultJackpot is the advertised top prize in whole dollars, used when
	// no jackpot override is configured.
	DefaultJackpot int64 = 1_000_000_000
)

// Ticket is one playable combination: WhitePicks distinct white balls sorted
// ascending plus a single mega ball. The winning draw has the same shape.
//
// Invariant: Whites holds distinct values in [1, WhiteBallMax] in strictly
// ascending order; Mega is in [1, MegaBallMax].
type Ticket struct {
	Whites []int
	Mega   int
}

// Validate checks the ticket invariants.
//
// Postcondition: returns nil only when the ticket satisfies every invariant
// above; otherwise an error naming the first violation found.
func (t Ticket) Validate() error {
	if len(t.Whites) != WhitePicks {
		return fmt.Errorf("lottery: ticket must hold %d white balls, got %d", WhitePicks, len(t.Whites))
	}
	prev := 0
	for i, w := range t.Whites {
		if w < 1 || w > WhiteBallMax {
			return fmt.Errorf("lottery: white ball %d out of range [1, %d]", w, WhiteBallMax)
		}
		if w <= prev {
			return fmt.Errorf("lottery: white balls must be distinct and ascending, got %d at position %d", w, i)
		}
		prev = w
	}
	if t.Mega < 1 || t.Mega > MegaBallMax {
		return fmt.Errorf("lottery: mega ball %d out of range [1, %d]", t.Mega, MegaBallMax)
	}
	return nil
}

// String returns a human-readable rendering in the format:
//
//	"[4 13 27 55 68] Mega Ball: 12"
func (t Ticket) String() string {
	return fmt.Sprintf("%v Mega Ball: %d", t.Whites, t.Mega)
}
