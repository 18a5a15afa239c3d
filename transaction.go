package networth

import (
	"errors"
	"fmt"
	"strings"
)

// AssetClass identifies which market a ticker trades on, and therefore
// which native currency its prices are denominated in.
type AssetClass int

const (
	// DomesticEquity is a Taiwan-listed stock or ETF, priced in TWD.
	DomesticEquity AssetClass = iota
	// ForeignEquity is a US-listed stock or ETF, priced in USD.
	ForeignEquity
	// Crypto is a cryptocurrency, priced in USD.
	Crypto
)

func (c AssetClass) String() string {
	switch c {
	case DomesticEquity:
		return "domestic-equity"
	case ForeignEquity:
		return "foreign-equity"
	case Crypto:
		return "crypto"
	default:
		return "unknown"
	}
}

// Currency returns the native currency asset prices of this class are quoted in.
func (c AssetClass) Currency() string {
	if c == DomesticEquity {
		return "TWD"
	}
	return "USD"
}

// ParseAssetClass parses a string into an AssetClass.
func ParseAssetClass(s string) (AssetClass, error) {
	switch s {
	case "domestic-equity":
		return DomesticEquity, nil
	case "foreign-equity":
		return ForeignEquity, nil
	case "crypto":
		return Crypto, nil
	default:
		return 0, fmt.Errorf("unknown asset class: %q", s)
	}
}

// Action is the direction of a trade.
type Action int

const (
	Buy Action = iota
	Sell
)

func (a Action) String() string {
	switch a {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseAction parses a string into an Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown action: %q", s)
	}
}

// Transaction is a single buy or sell event in the ledger.
//
// A transaction is immutable once recorded; editing is an explicit
// delete-and-reinsert at the store level.
type Transaction struct {
	ID       string     `json:"id,omitempty"`
	Ticker   string     `json:"ticker"`
	Class    AssetClass `json:"class"`
	Action   Action     `json:"action"`
	Quantity Quantity   `json:"quantity"`
	Price    Quantity   `json:"price"` // unit price, in the asset's native currency
	Date     Date       `json:"date"`
	Memo     string     `json:"memo,omitempty"`
}

// NewTransaction builds a validated transaction. The ticker is normalized
// to its canonical upper-case form.
func NewTransaction(on Date, ticker string, class AssetClass, action Action, quantity, price Quantity) (Transaction, error) {
	tx := Transaction{
		Ticker:   NormalizeTicker(ticker),
		Class:    class,
		Action:   action,
		Quantity: quantity,
		Price:    price,
		Date:     on,
	}
	return tx, tx.Validate()
}

// Validate rejects malformed rows. Quantity must be positive and the unit
// price non-negative; the builder downstream assumes a pre-cleaned ledger.
func (t Transaction) Validate() error {
	if t.Ticker == "" {
		return errors.New("ticker is missing")
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("quantity must be positive, got %s", t.Quantity)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("unit price must not be negative, got %s", t.Price)
	}
	if t.Date.IsZero() {
		return errors.New("trade date is missing")
	}
	return nil
}

// UnitPrice returns the unit price as Money in the asset's native currency.
func (t Transaction) UnitPrice() Money {
	return M(t.Price.value, t.Class.Currency())
}

// NormalizeTicker returns the canonical form of a ticker symbol.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// MarshalJSON/UnmarshalJSON for the enums keep the JSONL ledger format readable.

func (c AssetClass) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.String())), nil
}

func (c *AssetClass) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := ParseAssetClass(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (a Action) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", a.String())), nil
}

func (a *Action) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := ParseAction(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
