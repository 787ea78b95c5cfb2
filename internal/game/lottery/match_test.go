package lottery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/megamillions/internal/game/lottery"
	"github.com/cory-johannsen/megamillions/internal/game/rng"
)

// TestMatch_Overlap verifies white-ball intersection counting and mega-ball
// equality for crafted cases.
func TestMatch_Overlap(t *testing.T) {
	draw := lottery.Ticket{Whites: []int{4, 13, 27, 55, 68}, Mega: 12}

	tests := []struct {
		name       string
		ticket     lottery.Ticket
		wantWhites int
		wantMega   bool
	}{
		{"no overlap", lottery.Ticket{Whites: []int{1, 2, 3, 5, 6}, Mega: 1}, 0, false},
		{"full overlap", lottery.Ticket{Whites: []int{4, 13, 27, 55, 68}, Mega: 12}, 5, true},
		{"partial overlap", lottery.Ticket{Whites: []int{4, 13, 30, 40, 50}, Mega: 12}, 2, true},
		{"mega only", lottery.Ticket{Whites: []int{1, 2, 3, 5, 6}, Mega: 12}, 0, true},
		{"whites only", lottery.Ticket{Whites: []int{4, 13, 27, 55, 68}, Mega: 11}, 5, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := lottery.Match(tc.ticket, draw)
			assert.Equal(t, tc.wantWhites, m.WhiteMatches)
			assert.Equal(t, tc.wantMega, m.MegaMatch)
		})
	}
}

// TestMatchResult_Tier verifies the match outcome maps through TierFor.
func TestMatchResult_Tier(t *testing.T) {
	m := lottery.MatchResult{WhiteMatches: 5, MegaMatch: true}
	assert.Equal(t, lottery.TierJackpot, m.Tier())

	m = lottery.MatchResult{WhiteMatches: 2, MegaMatch: false}
	assert.Equal(t, lottery.TierNone, m.Tier())
}

// TestMatch_Property verifies for generated tickets that WhiteMatches equals
// a brute-force intersection count and stays within [0, WhitePicks].
func TestMatch_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		gen := lottery.NewGenerator(rng.NewSeededSource(seed))

		ticket, err := gen.Ticket()
		require.NoError(rt, err)
		draw, err := gen.Ticket()
		require.NoError(rt, err)

		m := lottery.Match(ticket, draw)

		want := 0
		for _, a := range ticket.Whites {
			for _, b := range draw.Whites {
				if a == b {
					want++
				}
			}
		}
		assert.Equal(rt, want, m.WhiteMatches)
		assert.GreaterOrEqual(rt, m.WhiteMatches, 0)
		assert.LessOrEqual(rt, m.WhiteMatches, lottery.WhitePicks)
		assert.Equal(rt, ticket.Mega == draw.Mega, m.MegaMatch)
	})
}

// TestMatch_Symmetric verifies Match is symmetric in its white-ball count.
func TestMatch_Symmetric(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		gen := lottery.NewGenerator(rng.NewSeededSource(seed))

		a, err := gen.Ticket()
		require.NoError(rt, err)
		b, err := gen.Ticket()
		require.NoError(rt, err)

		assert.Equal(rt, lottery.Match(a, b).WhiteMatches, lottery.Match(b, a).WhiteMatches)
	})
}
