package risk

import "fmt"

type Violation struct {
	Code string
	Msg  string
}

// Report lists the portfolio limits a planned trade would cross. It is
// advisory: Warnings never stop a trade from being logged.
type Report struct {
	Warnings []Violation

	PlannedRiskUSD float64
	PlannedMargin  float64
}

func (r *Report) add(code, msg string) {
	r.Warnings = append(r.Warnings, Violation{Code: code, Msg: msg})
}

// OK is true when no limit is crossed.
func (r Report) OK() bool { return len(r.Warnings) == 0 }

// Evaluate compares a plan and the realized P/L so far against the
// portfolio's configured ceilings. A zero ceiling is treated as unset.
func Evaluate(p Portfolio, plan Result, dayRealized, totalRealized float64) Report {
	r := Report{
		PlannedRiskUSD: plan.RiskUSD,
		PlannedMargin:  plan.Margin,
	}

	if p.RiskPerTradeUSD > 0 && plan.RiskUSD > p.RiskPerTradeUSD {
		r.add("RISK_OVER_DEFAULT",
			fmt.Sprintf("planned risk $%.2f exceeds per-trade risk $%.2f", plan.RiskUSD, p.RiskPerTradeUSD))
	}
	if p.MaxDailyRiskUSD > 0 && plan.RiskUSD > p.MaxDailyRiskUSD {
		r.add("RISK_TOO_HIGH",
			fmt.Sprintf("planned risk $%.2f exceeds max daily risk $%.2f", plan.RiskUSD, p.MaxDailyRiskUSD))
	}
	if p.Balance > 0 && plan.Margin > p.Balance {
		r.add("MARGIN_TOO_HIGH",
			fmt.Sprintf("estimated margin $%.2f exceeds balance $%.2f", plan.Margin, p.Balance))
	}

	// Circuit breakers (loss limits)
	if p.DailyLossLimit > 0 && dayRealized <= -p.DailyLossLimit {
		r.add("DAILY_LOSS_LIMIT",
			fmt.Sprintf("day realized %.2f <= limit %.2f", dayRealized, -p.DailyLossLimit))
	}
	if p.TotalLossLimit > 0 && totalRealized <= -p.TotalLossLimit {
		r.add("TOTAL_LOSS_LIMIT",
			fmt.Sprintf("total realized %.2f <= limit %.2f", totalRealized, -p.TotalLossLimit))
	}

	return r
}
