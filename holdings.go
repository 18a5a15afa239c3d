package networth

// Holding is one open position, keyed by ticker.
type Holding struct {
	Ticker      string
	DisplayName string
	Class       AssetClass
	Quantity    Quantity
	AverageCost Money // weighted-average cost basis, native currency
}

// TradeGain is a ledger row annotated with the realized profit or loss it
// contributed, in the asset's native currency. Buys always carry zero.
type TradeGain struct {
	Transaction
	Realized Money
}

// positionEpsilon is the sole determinant of "still held": a position fully
// sold to zero (or within floating noise of it) is dropped from holdings.
var positionEpsilon = Q(0.0001)

// position is the running per-ticker state while replaying the ledger.
// The average cost is a bare per-unit figure: rows of one ticker may
// disagree on the asset class, so currency is only attached per row when
// realizing, and on the way out from the ticker's first-seen class.
type position struct {
	quantity Quantity
	avgCost  Quantity
}

// Holdings replays the ledger in chronological order and returns the open
// positions, the total realized profit and loss converted to TWD at the
// supplied rate, and every row annotated with its native-currency realized
// gain.
//
// The weighted-average cost basis is recomputed only on buys; a sell never
// changes it. A sell with no prior buy realizes against a zero cost basis,
// and an oversold ticker goes quantity-negative internally; both are
// permitted, defined behaviors for malformed ledgers, not errors.
func Holdings(l *Ledger, fx Quantity) (holdings []Holding, realizedTWD Money, rows []TradeGain) {
	realizedTWD = TWD(0)
	if l == nil || l.Len() == 0 {
		return nil, realizedTWD, nil
	}

	tracker := make(map[string]*position)
	rows = make([]TradeGain, 0, l.Len())

	for _, tx := range l.Transactions() {
		p, ok := tracker[tx.Ticker]
		if !ok {
			p = &position{quantity: Q(0), avgCost: Q(0)}
			tracker[tx.Ticker] = p
		}

		realized := M(0, tx.Class.Currency())
		switch tx.Action {
		case Buy:
			newQty := p.quantity.Add(tx.Quantity)
			if newQty.IsPositive() {
				// avgCost <- (qty*avgCost + q*p) / (qty+q)
				held := p.quantity.Mul(p.avgCost)
				bought := tx.Quantity.Mul(tx.Price)
				p.avgCost = held.Add(bought).Div(newQty)
			}
			p.quantity = newQty
		case Sell:
			realized = M(tx.Price.Sub(p.avgCost).Mul(tx.Quantity).value, tx.Class.Currency())
			// quantity may go negative on an oversold ledger; kept as-is.
			p.quantity = p.quantity.Sub(tx.Quantity)
			realizedTWD = realizedTWD.Add(toTWD(realized, tx.Class, fx))
		}
		rows = append(rows, TradeGain{Transaction: tx, Realized: realized})
	}

	for _, ticker := range l.Tickers() {
		p := tracker[ticker]
		if !p.quantity.GreaterThan(positionEpsilon) {
			continue
		}
		class, _ := l.Class(ticker)
		holdings = append(holdings, Holding{
			Ticker:      ticker,
			DisplayName: ticker,
			Class:       class,
			Quantity:    p.quantity,
			AverageCost: M(p.avgCost.value, class.Currency()),
		})
	}
	return holdings, realizedTWD, rows
}

// toTWD converts a native-currency amount to TWD using the current rate.
// Domestic equities are already in TWD and pass through unchanged.
func toTWD(m Money, class AssetClass, fx Quantity) Money {
	if class == DomesticEquity {
		return TWD(m.value)
	}
	return TWD(m.value.Mul(fx.value))
}
