package market

import (
	"fmt"
	"strings"
)

// Side is the direction of a trade.
type Side string

const (
	Buy  Side = "Buy"
	Sell Side = "Sell"
)

// ParseSide accepts Buy/Sell in any case, plus long/short.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "long", "b":
		return Buy, nil
	case "sell", "short", "s":
		return Sell, nil
	default:
		return "", fmt.Errorf("invalid side %q: want Buy or Sell", s)
	}
}

// Sign is +1 for Buy and -1 for Sell.
func (s Side) Sign() float64 {
	if s == Sell {
		return -1
	}
	return 1
}

func (s Side) String() string { return string(s) }
