package networth

// FallbackUSDTWD is the USD/TWD rate applied when the market-data
// collaborator cannot supply one. The valuation degrades to an estimate
// instead of failing.
var FallbackUSDTWD = Q(32.5)

// MarketData supplies live native-currency prices and the USD/TWD rate.
//
// Implementations never treat a missing ticker as an error: the quote is
// simply absent from the map. A failed rate lookup returns an error and the
// caller substitutes FallbackUSDTWD.
type MarketData interface {
	// Quotes returns the latest available native-currency price per ticker.
	// Tickers with no available quote are silently omitted.
	Quotes(tickers []string) (map[string]Money, error)
	// USDTWD returns how many TWD one USD buys.
	USDTWD() (Quantity, error)
}

// Namer resolves a ticker to a human-readable display name.
type Namer interface {
	// Name returns the display name for a ticker, or an error when the
	// lookup fails; callers fall back to the bare ticker.
	Name(ticker string) (string, error)
}

// Rate asks the market-data collaborator for the USD/TWD rate, degrading
// to FallbackUSDTWD when it is unavailable.
func Rate(md MarketData) Quantity {
	fx, err := md.USDTWD()
	if err != nil || !fx.IsPositive() {
		return FallbackUSDTWD
	}
	return fx
}
