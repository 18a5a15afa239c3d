package networth

// Position is a holding annotated with its TWD-normalized valuation.
type Position struct {
	Holding
	Price       Money // latest native-currency price; zero when unknown
	PriceKnown  bool  // false flags a stale or missing quote
	MarketValue Money // TWD
	Cost        Money // TWD
	Unrealized  Money // TWD
	Return      Percent
}

// Valuation is the portfolio-wide result of one valuation cycle.
type Valuation struct {
	Positions        []Position
	TotalMarketValue Money // TWD
	TotalCost        Money // TWD
	Realized         Money // TWD, carried over from the holdings build
	TotalPNL         Money // (market - cost) + realized
}

// Valuate annotates every holding with TWD-normalized figures using the
// supplied native-currency prices and USD/TWD rate, and aggregates the
// portfolio totals.
//
// It is a pure function: no I/O, no shared state, identical inputs produce
// identical outputs. A ticker absent from prices values at zero (a full
// paper loss) rather than failing; the caller sees it via PriceKnown.
func Valuate(holdings []Holding, realizedTWD Money, prices map[string]Money, fx Quantity) *Valuation {
	v := &Valuation{
		Positions:        make([]Position, 0, len(holdings)),
		TotalMarketValue: TWD(0),
		TotalCost:        TWD(0),
		Realized:         realizedTWD,
	}

	for _, h := range holdings {
		price, known := prices[h.Ticker]
		if !known {
			price = M(0, h.Class.Currency())
		}

		marketValue := toTWD(price.Mul(h.Quantity), h.Class, fx)
		cost := toTWD(h.AverageCost.Mul(h.Quantity), h.Class, fx)
		pnl := marketValue.Sub(cost)

		// return% = pnl/cost*100; a zero cost substitutes 1 for the
		// denominator, a defined degenerate value rather than a crash.
		den := cost.AsFloat()
		if den == 0 {
			den = 1
		}
		ret := Percent(pnl.AsFloat() / den * 100)

		v.Positions = append(v.Positions, Position{
			Holding:     h,
			Price:       price,
			PriceKnown:  known,
			MarketValue: marketValue,
			Cost:        cost,
			Unrealized:  pnl,
			Return:      ret,
		})
		v.TotalMarketValue = v.TotalMarketValue.Add(marketValue)
		v.TotalCost = v.TotalCost.Add(cost)
	}

	v.TotalPNL = v.TotalMarketValue.Sub(v.TotalCost).Add(v.Realized)
	return v
}
