package networth

import (
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger is a list of transactions.
//
// In a Ledger transactions are always in chronological order. Transactions
// recorded on the same day keep their insertion order: the stable sort is a
// defined tie-break, not an accident, because same-date order affects the
// running cost basis.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger from the given transactions.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: make([]Transaction, 0, len(txs))}
	l.Append(txs...)
	return l
}

// Append appends transactions to this ledger and maintains the chronological order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the ledger by trade date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator over transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Tickers returns the sorted set of tickers appearing in the ledger.
func (l *Ledger) Tickers() []string {
	seen := make(map[string]struct{})
	for _, tx := range l.transactions {
		seen[tx.Ticker] = struct{}{}
	}
	tickers := slices.Collect(maps.Keys(seen))
	slices.Sort(tickers)
	return tickers
}

// Class returns the asset class of a ticker, taken from its first
// transaction row, and false when the ticker never traded.
func (l *Ledger) Class(ticker string) (AssetClass, bool) {
	for _, tx := range l.transactions {
		if tx.Ticker == ticker {
			return tx.Class, true
		}
	}
	return 0, false
}

// OldestTransactionDate returns the date of the earliest transaction in the ledger.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction in the ledger.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}
