// market/instruments.go
package market

import (
	"fmt"
	"strings"
	"time"
)

// Instrument is the reference data for a tradable symbol. All values
// are USD denominated.
type Instrument struct {
	ID             int64     `db:"id" json:"id" yaml:"-"`
	Symbol         string    `db:"symbol" json:"symbol" yaml:"symbol"`
	PipSize        float64   `db:"pip_size" json:"pip_size" yaml:"pip_size"`                   // price units per pip
	PipValuePerLot float64   `db:"pip_value_per_lot" json:"pip_value_per_lot" yaml:"pip_value"` // USD per pip per 1.0 lot
	ContractSize   float64   `db:"contract_size" json:"contract_size" yaml:"contract_size"`     // underlying units per 1.0 lot
	Price          float64   `db:"price" json:"price" yaml:"price"`
	CreatedAt      time.Time `db:"created_at" json:"created_at" yaml:"-"`
}

// Validate reports reference data that would make the trade math
// meaningless. Pip size and pip value must never be zero.
func (i Instrument) Validate() error {
	if strings.TrimSpace(i.Symbol) == "" {
		return fmt.Errorf("instrument symbol is required")
	}
	if i.PipSize <= 0 {
		return fmt.Errorf("%s: pip_size must be positive", i.Symbol)
	}
	if i.PipValuePerLot <= 0 {
		return fmt.Errorf("%s: pip_value_per_lot must be positive", i.Symbol)
	}
	if i.ContractSize < 0 {
		return fmt.Errorf("%s: contract_size must not be negative", i.Symbol)
	}
	if i.Price < 0 {
		return fmt.Errorf("%s: price must not be negative", i.Symbol)
	}
	return nil
}

// DefaultInstruments are seeded on first start.
var DefaultInstruments = []Instrument{
	{
		Symbol:         "XAUUSD",
		PipSize:        0.01,
		PipValuePerLot: 0.1,
		ContractSize:   100,
		Price:          2400,
	},
	{
		Symbol:         "BTCUSD",
		PipSize:        1.0,
		PipValuePerLot: 1.0,
		ContractSize:   1,
		Price:          60000,
	},
}
