package journal

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DailyPL is the realized P/L summed over one calendar date.
type DailyPL struct {
	Date time.Time
	PL   float64
}

// Summary describes the closed trades of one portfolio.
type Summary struct {
	Count   int // closed trades only
	Wins    int
	Losses  int
	Total   float64
	Best    float64
	Worst   float64
	WinRate float64 // 0..1
}

// DailyPLSeries groups entries by date and sums their P/L in ascending
// date order. Open trades add nothing, so a date with only open trades
// reports 0.
func DailyPLSeries(entries []PLEntry) []DailyPL {
	sums := map[time.Time]decimal.Decimal{}
	for _, e := range entries {
		d := Day(e.Date)
		sum := sums[d]
		if e.PL != nil {
			sum = sum.Add(decimal.NewFromFloat(*e.PL))
		}
		sums[d] = sum
	}

	out := make([]DailyPL, 0, len(sums))
	for d, sum := range sums {
		out = append(out, DailyPL{Date: d, PL: sum.InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Summarize computes total, best and worst over the closed trades in
// entries. ok is false when there is no closed trade to summarize.
func Summarize(entries []PLEntry) (s Summary, ok bool) {
	total := decimal.Zero
	for _, e := range entries {
		if e.PL == nil {
			continue
		}
		pl := *e.PL
		if s.Count == 0 || pl > s.Best {
			s.Best = pl
		}
		if s.Count == 0 || pl < s.Worst {
			s.Worst = pl
		}
		switch {
		case pl > 0:
			s.Wins++
		case pl < 0:
			s.Losses++
		}
		s.Count++
		total = total.Add(decimal.NewFromFloat(pl))
	}
	if s.Count == 0 {
		return Summary{}, false
	}

	s.Total = total.InexactFloat64()
	s.WinRate = float64(s.Wins) / float64(s.Count)
	return s, true
}
