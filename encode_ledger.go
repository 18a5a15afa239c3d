package networth

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists a ledger as JSONL, one transaction per line, in a way
// that is human-readable and git-friendly. It is the import/export exchange
// format; the store remains the system of record.

// DecodeLedger decodes transactions from a stream of JSONL data and returns
// a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		txt := scanner.Text()
		if strings.TrimSpace(txt) == "" {
			continue
		}

		var tx Transaction
		if err := json.Unmarshal([]byte(txt), &tx); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, txt, err)
		}
		tx.Ticker = NormalizeTicker(tx.Ticker)
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("invalid transaction on line %d: %w", line, err)
		}
		ledger.Append(tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// EncodeLedger writes all transactions in chronological order, one JSON
// object per line.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// EncodeTransaction appends a single transaction as one JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	b, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("cannot encode transaction: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}
