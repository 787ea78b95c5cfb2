// Package simulation orchestrates a single Mega Millions drawing run:
// draw the winning numbers, generate a batch of tickets, evaluate matches,
// aggregate per-tier statistics, and write the report.
package simulation

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/megamillions/internal/config"
	"github.com/cory-johannsen/megamillions/internal/game/lottery"
	"github.com/cory-johannsen/megamillions/internal/game/rng"
	"github.com/cory-johannsen/megamillions/internal/game/stats"
)

// NumTickets is the fixed batch size per run.
const NumTickets = 10

// Runner executes one complete simulation end to end. All state is local to
// a run; nothing is shared or persisted.
type Runner struct {
	gen         *lottery.Generator
	prizes      lottery.PrizeTable
	ticketPrice float64
	out         io.Writer
	logger      *zap.Logger
}

// NewRunner wires a Runner from game configuration, a randomness source, a
// logger, and the report destination.
//
// Precondition: src, logger, and out must be non-nil.
func NewRunner(cfg config.GameConfig, src rng.Source, logger *zap.Logger, out io.Writer) *Runner {
	return &Runner{
		gen:         lottery.NewGenerator(src),
		prizes:      lottery.NewPrizeTable(cfg.Jackpot),
		ticketPrice: cfg.TicketPrice,
		out:         out,
		logger:      logger,
	}
}

// Run performs the full drawing: one winning draw, NumTickets generated
// tickets evaluated against it, then the summary and probability report.
//
// Postcondition: on error, the failure is logged at error level and returned
// wrapped; no partial report is written after a generation failure.
func (r *Runner) Run() error {
	start := time.Now()
	runID := uuid.New()

	r.logger.Info("starting simulation",
		zap.String("run_id", runID.String()),
		zap.Int("tickets", NumTickets),
		zap.Int64("jackpot", r.prizes.Jackpot),
	)

	draw, err := r.gen.Ticket()
	if err != nil {
		r.logger.Error("drawing winning numbers", zap.Error(err))
		return fmt.Errorf("drawing winning numbers: %w", err)
	}

	fmt.Fprintf(r.out, "\nMega Millions Simulator - %d Tickets\n", NumTickets)
	fmt.Fprintf(r.out, "Winning numbers: %s\n", draw)

	agg := stats.NewAggregator()
	for i := 0; i < NumTickets; i++ {
		ticket, err := r.gen.Ticket()
		if err != nil {
			r.logger.Error("generating ticket",
				zap.Int("ticket", i+1),
				zap.Error(err),
			)
			return fmt.Errorf("generating ticket %d: %w", i+1, err)
		}

		tier := lottery.Match(ticket, draw).Tier()
		agg.Record(tier, r.prizes.Payout(tier))
	}

	reporter := stats.NewReporter(r.out)
	reporter.WriteSummary(agg.Tickets(), float64(NumTickets)*r.ticketPrice, agg.TotalWon())
	reporter.WriteProbabilityTable(agg)

	r.logger.Info("simulation complete",
		zap.String("run_id", runID.String()),
		zap.Int64("total_won", agg.TotalWon()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
