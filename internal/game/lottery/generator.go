package lottery

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/megamillions/internal/game/rng"
)

// Generator produces random tickets and draws from a rng.Source.
//
// The range fields default to the official game ranges; they are exported so
// tests can exercise misconfiguration handling. A pick count larger than the
// white-ball pool is a fatal configuration error, not a retry case.
type Generator struct {
	// Source provides randomness. Inject a seeded source for reproducible runs.
	Source rng.Source
	// WhiteMax is the top of the white-ball range.
	WhiteMax int
	// Picks is the number of distinct white balls to sample.
	Picks int
	// MegaMax is the top of the mega-ball range.
	MegaMax int
}

// NewGenerator returns a Generator with the official Mega Millions ranges.
//
// Precondition: src must be non-nil.
func NewGenerator(src rng.Source) *Generator {
	return &Generator{
		Source:   src,
		WhiteMax: WhiteBallMax,
		Picks:    WhitePicks,
		MegaMax:  MegaBallMax,
	}
}

// Ticket samples one random ticket: Picks distinct white balls uniformly
// without replacement from [1, WhiteMax], sorted ascending, plus one
// independent uniform mega ball from [1, MegaMax].
//
// Postcondition: on success the returned ticket passes Validate when the
// generator uses the official ranges.
func (g *Generator) Ticket() (Ticket, error) {
	whites, err := sampleDistinct(g.Source, g.Picks, g.WhiteMax)
	if err != nil {
		return Ticket{}, fmt.Errorf("generating white balls: %w", err)
	}
	if g.MegaMax < 1 {
		return Ticket{}, fmt.Errorf("generating mega ball: pool max %d must be >= 1", g.MegaMax)
	}
	return Ticket{
		Whites: whites,
		Mega:   g.Source.Intn(g.MegaMax) + 1,
	}, nil
}

// sampleDistinct draws count distinct values uniformly without replacement
// from [1, max] and returns them sorted ascending.
//
// Postcondition: len(result) == count; all values distinct and in [1, max].
func sampleDistinct(src rng.Source, count, max int) ([]int, error) {
	if count < 1 {
		return nil, fmt.Errorf("sample count %d must be >= 1", count)
	}
	if count > max {
		return nil, fmt.Errorf("cannot sample %d distinct values from [1, %d]", count, max)
	}

	// Partial Fisher-Yates over the full pool.
	pool := make([]int, max)
	for i := range pool {
		pool[i] = i + 1
	}
	for i := 0; i < count; i++ {
		j := i + src.Intn(max-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	picked := pool[:count:count]
	sort.Ints(picked)
	return picked, nil
}
