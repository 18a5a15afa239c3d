package networth

import (
	"reflect"
	"testing"
)

func TestValuate_NormalizesToTWD(t *testing.T) {
	holdings := []Holding{
		{Ticker: "2330", Class: DomesticEquity, Quantity: Q(10), AverageCost: TWD(500)},
		{Ticker: "AAPL", Class: ForeignEquity, Quantity: Q(4), AverageCost: M(100, "USD")},
	}
	prices := map[string]Money{
		"2330": TWD(600),
		"AAPL": M(150, "USD"),
	}
	v := Valuate(holdings, TWD(0), prices, Q(32))

	// 2330: market 600*10, cost 500*10, both already TWD.
	p := v.Positions[0]
	if !p.MarketValue.Equal(TWD(6000)) || !p.Cost.Equal(TWD(5000)) {
		t.Errorf("2330 market/cost = %s/%s, want 6000/5000", p.MarketValue, p.Cost)
	}
	if !p.Return.Equal(Percent(20)) {
		t.Errorf("2330 return = %s, want 20%%", p.Return)
	}

	// AAPL: market 150*4*32, cost 100*4*32.
	p = v.Positions[1]
	if !p.MarketValue.Equal(TWD(19200)) || !p.Cost.Equal(TWD(12800)) {
		t.Errorf("AAPL market/cost = %s/%s, want 19200/12800", p.MarketValue, p.Cost)
	}
	if !p.Return.Equal(Percent(50)) {
		t.Errorf("AAPL return = %s, want 50%%", p.Return)
	}

	if !v.TotalMarketValue.Equal(TWD(25200)) {
		t.Errorf("TotalMarketValue = %s, want 25200", v.TotalMarketValue)
	}
	if !v.TotalCost.Equal(TWD(17800)) {
		t.Errorf("TotalCost = %s, want 17800", v.TotalCost)
	}
	if !v.TotalPNL.Equal(TWD(7400)) {
		t.Errorf("TotalPNL = %s, want 7400", v.TotalPNL)
	}
}

func TestValuate_ZeroCostBasis(t *testing.T) {
	// cost 0 substitutes the denominator with 1: return% = pnl*100, no NaN.
	holdings := []Holding{
		{Ticker: "FREE", Class: DomesticEquity, Quantity: Q(3), AverageCost: TWD(0)},
	}
	prices := map[string]Money{"FREE": TWD(50)}
	v := Valuate(holdings, TWD(0), prices, FallbackUSDTWD)

	p := v.Positions[0]
	if !p.Cost.IsZero() {
		t.Errorf("Cost = %s, want 0", p.Cost)
	}
	if !p.Return.Equal(Percent(15000)) {
		t.Errorf("Return = %s, want pnl*100 = 15000%%", p.Return)
	}
}

func TestValuate_MissingPrice(t *testing.T) {
	// A ticker absent from the price map values at zero: full paper loss,
	// flagged through PriceKnown, never an error.
	holdings := []Holding{
		{Ticker: "GONE", Class: ForeignEquity, Quantity: Q(2), AverageCost: M(10, "USD")},
	}
	v := Valuate(holdings, TWD(0), map[string]Money{}, Q(32))

	p := v.Positions[0]
	if p.PriceKnown {
		t.Error("PriceKnown = true, want false for a missing quote")
	}
	if !p.MarketValue.IsZero() {
		t.Errorf("MarketValue = %s, want 0", p.MarketValue)
	}
	if !p.Return.Equal(Percent(-100)) {
		t.Errorf("Return = %s, want -100%%", p.Return)
	}
}

func TestValuate_Idempotence(t *testing.T) {
	holdings := []Holding{
		{Ticker: "2330", Class: DomesticEquity, Quantity: Q(10), AverageCost: TWD(500)},
		{Ticker: "BTC", Class: Crypto, Quantity: Q(0.5), AverageCost: M(30000, "USD")},
	}
	prices := map[string]Money{"2330": TWD(600), "BTC": M(60000, "USD")}

	a := Valuate(holdings, TWD(123), prices, Q(32))
	b := Valuate(holdings, TWD(123), prices, Q(32))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Valuate is not idempotent:\n%+v\n%+v", a, b)
	}
}

func TestValuate_EmptyHoldings(t *testing.T) {
	v := Valuate(nil, TWD(0), nil, FallbackUSDTWD)
	if len(v.Positions) != 0 {
		t.Errorf("Positions = %v, want none", v.Positions)
	}
	if !v.TotalMarketValue.IsZero() || !v.TotalCost.IsZero() || !v.TotalPNL.IsZero() {
		t.Error("empty holdings must aggregate to zero totals")
	}
}

func TestValuate_RealizedCarriesIntoTotalPNL(t *testing.T) {
	v := Valuate(nil, TWD(777), nil, FallbackUSDTWD)
	if !v.TotalPNL.Equal(TWD(777)) {
		t.Errorf("TotalPNL = %s, want realized 777 with no positions", v.TotalPNL)
	}
}
