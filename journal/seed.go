package journal

import (
	"context"
	"errors"
	"fmt"

	"github.com/rustyeddy/tradeplan/market"
	"github.com/rustyeddy/tradeplan/risk"
	"go.uber.org/zap"
)

// Seeds are the reference rows Bootstrap makes sure exist.
type Seeds struct {
	Instruments []market.Instrument
	Portfolios  []risk.Portfolio
}

// Bootstrap inserts each seed whose symbol or name is not yet present.
// Existing rows are never overwritten, so it is safe on every start.
func Bootstrap(ctx context.Context, r Registry, seeds Seeds, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	for _, inst := range seeds.Instruments {
		_, err := r.InstrumentBySymbol(ctx, inst.Symbol)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("lookup instrument %s: %w", inst.Symbol, err)
		}
		if err := r.CreateInstrument(ctx, &inst); err != nil && !errors.Is(err, ErrDuplicate) {
			return fmt.Errorf("seed instrument %s: %w", inst.Symbol, err)
		}
		log.Info("seeded instrument", zap.String("symbol", inst.Symbol))
	}

	for _, p := range seeds.Portfolios {
		_, err := r.PortfolioByName(ctx, p.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("lookup portfolio %q: %w", p.Name, err)
		}
		if err := r.CreatePortfolio(ctx, &p); err != nil && !errors.Is(err, ErrDuplicate) {
			return fmt.Errorf("seed portfolio %q: %w", p.Name, err)
		}
		log.Info("seeded portfolio", zap.String("name", p.Name))
	}
	return nil
}
