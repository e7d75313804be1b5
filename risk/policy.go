package risk

import (
	"fmt"
	"strings"
	"time"
)

// Portfolio is one trading account and its risk configuration. The loss
// limits and max daily risk are informational; nothing refuses a trade
// because of them.
type Portfolio struct {
	ID      int64   `db:"id" json:"id" yaml:"-"`
	Name    string  `db:"name" json:"name" yaml:"name"`
	Balance float64 `db:"balance" json:"balance" yaml:"balance"` // USD
	// Leverage is only used by the margin estimate.
	Leverage int `db:"leverage" json:"leverage" yaml:"leverage"`

	// Circuit breakers
	DailyLossLimit float64 `db:"daily_loss_limit" json:"daily_loss_limit" yaml:"daily_loss_limit"` // e.g. 1250
	TotalLossLimit float64 `db:"total_loss_limit" json:"total_loss_limit" yaml:"total_loss_limit"` // e.g. 2500

	// Sizing
	RiskPerTradeUSD float64 `db:"risk_per_trade_usd" json:"risk_per_trade_usd" yaml:"risk_per_trade_usd"` // e.g. 62.5
	MaxDailyRiskUSD float64 `db:"max_daily_risk_usd" json:"max_daily_risk_usd" yaml:"max_daily_risk_usd"` // e.g. 500

	CreatedAt time.Time `db:"created_at" json:"created_at" yaml:"-"`
}

// NewPortfolio returns a portfolio named name with the default
// 25k-account settings.
func NewPortfolio(name string) Portfolio {
	return Portfolio{
		Name:            strings.TrimSpace(name),
		Balance:         25000,
		Leverage:        100,
		DailyLossLimit:  1250,
		TotalLossLimit:  2500,
		RiskPerTradeUSD: 62.5,
		MaxDailyRiskUSD: 500,
	}
}

// DefaultPortfolio is seeded on first start.
var DefaultPortfolio = NewPortfolio("WeMaster 510zero 25k")

// Validate checks the fields a settings form would refuse.
func (p Portfolio) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("portfolio name is required")
	}
	if p.Leverage < 1 {
		return fmt.Errorf("%s: leverage must be at least 1", p.Name)
	}
	if p.RiskPerTradeUSD < 0 {
		return fmt.Errorf("%s: risk_per_trade_usd must not be negative", p.Name)
	}
	return nil
}
