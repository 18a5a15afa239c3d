package networth

import "fmt"

// FireMode selects how the retirement target is derived.
type FireMode int

const (
	// Rule25x derives the target from monthly expenses using the 25x rule.
	Rule25x FireMode = iota
	// CustomTarget uses a fixed, user-chosen amount.
	CustomTarget
)

func (m FireMode) String() string {
	switch m {
	case Rule25x:
		return "25x"
	case CustomTarget:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseFireMode parses a string into a FireMode.
func ParseFireMode(s string) (FireMode, error) {
	switch s {
	case "25x":
		return Rule25x, nil
	case "custom":
		return CustomTarget, nil
	default:
		return 0, fmt.Errorf("unknown fire mode: %q", s)
	}
}

// Settings holds the user's retirement planning parameters.
type Settings struct {
	MonthlyExpense Money
	Mode           FireMode
	Target         Money // only meaningful in CustomTarget mode
}

// DefaultSettings mirror the defaults handed to a user with no stored row.
func DefaultSettings() Settings {
	return Settings{
		MonthlyExpense: TWD(80000),
		Mode:           Rule25x,
		Target:         TWD(24000000),
	}
}

// FireTarget returns the net-asset amount this user is aiming for: 25 years
// of annual expenses under the 25x rule, or the custom amount.
func (s Settings) FireTarget() Money {
	if s.Mode == CustomTarget {
		return s.Target
	}
	return s.MonthlyExpense.Mul(Q(12)).Mul(Q(25))
}

// NetWorth is the aggregate picture on a given day.
type NetWorth struct {
	MarketValue Money // TWD market value of all open positions
	Liquidity   Money // liquid cash across all accounts
	Liabilities Money // outstanding debt
	NetAssets   Money // market + liquidity - liabilities
}

// NewNetWorth aggregates a valuation total with cash and debt.
func NewNetWorth(marketValue, liquidity, liabilities Money) NetWorth {
	return NetWorth{
		MarketValue: marketValue,
		Liquidity:   liquidity,
		Liabilities: liabilities,
		NetAssets:   marketValue.Add(liquidity).Sub(liabilities),
	}
}

// Progress reports how far net assets are along the FIRE target.
// A zero target yields zero progress rather than a division error.
func Progress(net NetWorth, target Money) Percent {
	t := target.AsFloat()
	if t == 0 {
		return 0
	}
	return Percent(net.NetAssets.AsFloat() / t * 100)
}

// Snapshot is the persisted point-in-time aggregate: at most one per user
// per calendar day, same-day saves overwrite.
type Snapshot struct {
	Date        Date
	MarketValue Money
	Liquidity   Money
	Liabilities Money
	NetAssets   Money
}

// NewSnapshot captures a NetWorth for a given day.
func NewSnapshot(on Date, net NetWorth) Snapshot {
	return Snapshot{
		Date:        on,
		MarketValue: net.MarketValue,
		Liquidity:   net.Liquidity,
		Liabilities: net.Liabilities,
		NetAssets:   net.NetAssets,
	}
}
