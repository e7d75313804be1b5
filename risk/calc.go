package risk

// Inputs to the position planner. Everything is USD denominated.
type Inputs struct {
	RiskUSD        float64 // 62.5
	SLPips         float64 // 625
	PipValuePerLot float64
	ContractSize   float64
	Price          float64
	Leverage       int
}

type Result struct {
	Lots    float64
	Margin  float64
	RiskUSD float64
}

// DefaultSLPips is the planner's stop distance when none is given.
const DefaultSLPips = 625.0

// Calculate sizes a position from a fixed dollar risk and estimates the
// margin it would tie up. Nothing is persisted.
func Calculate(in Inputs) Result {
	lots := LotSize(in.RiskUSD, in.SLPips, in.PipValuePerLot)
	return Result{
		Lots:    lots,
		Margin:  EstimatedMargin(in.ContractSize, in.Price, lots, float64(in.Leverage)),
		RiskUSD: in.RiskUSD,
	}
}
