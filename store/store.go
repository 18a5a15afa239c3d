// Package store persists ledgers, cash accounts, liabilities, snapshots
// and settings in a single SQLite file.
//
// Exact decimal amounts are stored as TEXT and re-parsed on the way out,
// so no value ever round-trips through a float column.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	networth "github.com/cafa101001/my-asset-app"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	ticker     TEXT NOT NULL,
	class      TEXT NOT NULL,
	action     TEXT NOT NULL,
	quantity   TEXT NOT NULL,
	price      TEXT NOT NULL,
	trade_date TEXT NOT NULL,
	memo       TEXT NOT NULL DEFAULT '',
	seq        INTEGER
);
CREATE TABLE IF NOT EXISTS liquidity (
	user_id TEXT NOT NULL,
	account TEXT NOT NULL,
	amount  TEXT NOT NULL,
	PRIMARY KEY (user_id, account)
);
CREATE TABLE IF NOT EXISTS liabilities (
	user_id  TEXT NOT NULL,
	name     TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT '',
	amount   TEXT NOT NULL,
	PRIMARY KEY (user_id, name)
);
CREATE TABLE IF NOT EXISTS snapshots (
	user_id       TEXT NOT NULL,
	snapshot_date TEXT NOT NULL,
	market_value  TEXT NOT NULL,
	liquidity     TEXT NOT NULL,
	liabilities   TEXT NOT NULL,
	net_assets    TEXT NOT NULL,
	PRIMARY KEY (user_id, snapshot_date)
);
CREATE TABLE IF NOT EXISTS settings (
	user_id         TEXT PRIMARY KEY,
	monthly_expense TEXT NOT NULL,
	fire_mode       TEXT NOT NULL,
	custom_target   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS income (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	recorded_at TEXT NOT NULL,
	annual      TEXT NOT NULL,
	note        TEXT NOT NULL DEFAULT ''
);
`

// Store is a SQLite-backed repository for one or more users.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func parseDecimal(col, text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("corrupt %s value %q: %w", col, text, err)
	}
	return d, nil
}

// AddTransaction records a trade for a user and returns its assigned id.
func (s *Store) AddTransaction(user string, tx networth.Transaction) (string, error) {
	if err := tx.Validate(); err != nil {
		return "", err
	}
	id := tx.ID
	if id == "" {
		id = uuid.NewString()
	}
	_, err := s.db.Exec(`
		INSERT INTO transactions
		(id, user_id, ticker, class, action, quantity, price, trade_date, memo, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(seq), 0) + 1 FROM transactions WHERE user_id = ?))`,
		id, user, tx.Ticker, tx.Class.String(), tx.Action.String(),
		tx.Quantity.String(), tx.Price.String(), tx.Date.String(), tx.Memo, user,
	)
	if err != nil {
		return "", fmt.Errorf("cannot record transaction: %w", err)
	}
	return id, nil
}

// DeleteTransaction removes a trade by id. Unknown ids are not an error.
func (s *Store) DeleteTransaction(user, id string) error {
	_, err := s.db.Exec(`DELETE FROM transactions WHERE user_id = ? AND id = ?`, user, id)
	return err
}

// Ledger loads all of a user's trades, in insertion order. The returned
// ledger re-sorts them chronologically while keeping that order for ties.
func (s *Store) Ledger(user string) (*networth.Ledger, error) {
	rows, err := s.db.Query(`
		SELECT id, ticker, class, action, quantity, price, trade_date, memo
		FROM transactions WHERE user_id = ? ORDER BY seq`, user)
	if err != nil {
		return nil, fmt.Errorf("cannot load transactions: %w", err)
	}
	defer rows.Close()

	var txs []networth.Transaction
	for rows.Next() {
		var id, ticker, class, action, quantity, price, date, memo string
		if err := rows.Scan(&id, &ticker, &class, &action, &quantity, &price, &date, &memo); err != nil {
			return nil, err
		}
		tx, err := scanTransaction(id, ticker, class, action, quantity, price, date, memo)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return networth.NewLedger(txs...), nil
}

func scanTransaction(id, ticker, class, action, quantity, price, date, memo string) (networth.Transaction, error) {
	var tx networth.Transaction
	c, err := networth.ParseAssetClass(class)
	if err != nil {
		return tx, err
	}
	a, err := networth.ParseAction(action)
	if err != nil {
		return tx, err
	}
	q, err := parseDecimal("quantity", quantity)
	if err != nil {
		return tx, err
	}
	p, err := parseDecimal("price", price)
	if err != nil {
		return tx, err
	}
	on, err := networth.ParseDate(date)
	if err != nil {
		return tx, err
	}
	tx, err = networth.NewTransaction(on, ticker, c, a, networth.Q(q), networth.Q(p))
	if err != nil {
		return tx, err
	}
	tx.ID, tx.Memo = id, memo
	return tx, nil
}

// Account is a named pool of liquid cash, in TWD.
type Account struct {
	Name   string
	Amount networth.Money
}

// SetLiquidity creates or overwrites a cash account balance.
func (s *Store) SetLiquidity(user, account string, amount networth.Money) error {
	_, err := s.db.Exec(`
		INSERT INTO liquidity (user_id, account, amount) VALUES (?, ?, ?)
		ON CONFLICT(user_id, account) DO UPDATE SET amount = excluded.amount`,
		user, account, amount.Amount().String())
	return err
}

// DeleteLiquidity removes a cash account.
func (s *Store) DeleteLiquidity(user, account string) error {
	_, err := s.db.Exec(`DELETE FROM liquidity WHERE user_id = ? AND account = ?`, user, account)
	return err
}

// Liquidity returns all cash accounts, sorted by name.
func (s *Store) Liquidity(user string) ([]Account, error) {
	rows, err := s.db.Query(`SELECT account, amount FROM liquidity WHERE user_id = ? ORDER BY account`, user)
	if err != nil {
		return nil, fmt.Errorf("cannot load liquidity: %w", err)
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		var name, amount string
		if err := rows.Scan(&name, &amount); err != nil {
			return nil, err
		}
		d, err := parseDecimal("amount", amount)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, Account{Name: name, Amount: networth.TWD(d)})
	}
	return accounts, rows.Err()
}

// Liability is an outstanding debt, in TWD.
type Liability struct {
	Name     string
	Category string
	Amount   networth.Money
}

// SetLiability creates or overwrites a debt.
func (s *Store) SetLiability(user string, l Liability) error {
	_, err := s.db.Exec(`
		INSERT INTO liabilities (user_id, name, category, amount) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, name) DO UPDATE SET category = excluded.category, amount = excluded.amount`,
		user, l.Name, l.Category, l.Amount.Amount().String())
	return err
}

// DeleteLiability removes a debt by name.
func (s *Store) DeleteLiability(user, name string) error {
	_, err := s.db.Exec(`DELETE FROM liabilities WHERE user_id = ? AND name = ?`, user, name)
	return err
}

// Liabilities returns all debts, sorted by name.
func (s *Store) Liabilities(user string) ([]Liability, error) {
	rows, err := s.db.Query(`SELECT name, category, amount FROM liabilities WHERE user_id = ? ORDER BY name`, user)
	if err != nil {
		return nil, fmt.Errorf("cannot load liabilities: %w", err)
	}
	defer rows.Close()

	var debts []Liability
	for rows.Next() {
		var name, category, amount string
		if err := rows.Scan(&name, &category, &amount); err != nil {
			return nil, err
		}
		d, err := parseDecimal("amount", amount)
		if err != nil {
			return nil, err
		}
		debts = append(debts, Liability{Name: name, Category: category, Amount: networth.TWD(d)})
	}
	return debts, rows.Err()
}

// Total sums a list of TWD amounts.
func Total[T any](items []T, amount func(T) networth.Money) networth.Money {
	total := networth.TWD(0)
	for _, it := range items {
		total = total.Add(amount(it))
	}
	return total
}

// SaveSnapshot upserts the snapshot for its calendar day: saving twice on
// the same day overwrites rather than appends.
func (s *Store) SaveSnapshot(user string, snap networth.Snapshot) error {
	_, err := s.db.Exec(`
		INSERT INTO snapshots (user_id, snapshot_date, market_value, liquidity, liabilities, net_assets)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, snapshot_date) DO UPDATE SET
			market_value = excluded.market_value,
			liquidity    = excluded.liquidity,
			liabilities  = excluded.liabilities,
			net_assets   = excluded.net_assets`,
		user, snap.Date.String(),
		snap.MarketValue.Amount().String(),
		snap.Liquidity.Amount().String(),
		snap.Liabilities.Amount().String(),
		snap.NetAssets.Amount().String(),
	)
	return err
}

// Snapshots returns the saved history, most recent first.
func (s *Store) Snapshots(user string) ([]networth.Snapshot, error) {
	rows, err := s.db.Query(`
		SELECT snapshot_date, market_value, liquidity, liabilities, net_assets
		FROM snapshots WHERE user_id = ? ORDER BY snapshot_date DESC`, user)
	if err != nil {
		return nil, fmt.Errorf("cannot load snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []networth.Snapshot
	for rows.Next() {
		var date, market, liquidity, liabilities, net string
		if err := rows.Scan(&date, &market, &liquidity, &liabilities, &net); err != nil {
			return nil, err
		}
		snap, err := scanSnapshot(date, market, liquidity, liabilities, net)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

func scanSnapshot(date, market, liquidity, liabilities, net string) (networth.Snapshot, error) {
	var snap networth.Snapshot
	on, err := networth.ParseDate(date)
	if err != nil {
		return snap, err
	}
	m, err := parseDecimal("market_value", market)
	if err != nil {
		return snap, err
	}
	lq, err := parseDecimal("liquidity", liquidity)
	if err != nil {
		return snap, err
	}
	lb, err := parseDecimal("liabilities", liabilities)
	if err != nil {
		return snap, err
	}
	na, err := parseDecimal("net_assets", net)
	if err != nil {
		return snap, err
	}
	return networth.Snapshot{
		Date:        on,
		MarketValue: networth.TWD(m),
		Liquidity:   networth.TWD(lq),
		Liabilities: networth.TWD(lb),
		NetAssets:   networth.TWD(na),
	}, nil
}

// Settings returns the user's planning parameters, or the defaults when
// the user has never saved any.
func (s *Store) Settings(user string) (networth.Settings, error) {
	var expense, mode, target string
	err := s.db.QueryRow(`
		SELECT monthly_expense, fire_mode, custom_target FROM settings WHERE user_id = ?`,
		user).Scan(&expense, &mode, &target)
	if err == sql.ErrNoRows {
		return networth.DefaultSettings(), nil
	}
	if err != nil {
		return networth.Settings{}, fmt.Errorf("cannot load settings: %w", err)
	}
	e, err := parseDecimal("monthly_expense", expense)
	if err != nil {
		return networth.Settings{}, err
	}
	m, err := networth.ParseFireMode(mode)
	if err != nil {
		return networth.Settings{}, err
	}
	t, err := parseDecimal("custom_target", target)
	if err != nil {
		return networth.Settings{}, err
	}
	return networth.Settings{
		MonthlyExpense: networth.TWD(e),
		Mode:           m,
		Target:         networth.TWD(t),
	}, nil
}

// SaveSettings overwrites the user's planning parameters.
func (s *Store) SaveSettings(user string, set networth.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (user_id, monthly_expense, fire_mode, custom_target)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			monthly_expense = excluded.monthly_expense,
			fire_mode       = excluded.fire_mode,
			custom_target   = excluded.custom_target`,
		user, set.MonthlyExpense.Amount().String(), set.Mode.String(), set.Target.Amount().String())
	return err
}

// Income is a dated record of annual income, kept for trend display.
type Income struct {
	ID         string
	RecordedAt networth.Date
	Annual     networth.Money
	Note       string
}

// AddIncome records an annual income figure and returns its id.
func (s *Store) AddIncome(user string, on networth.Date, annual networth.Money, note string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(`
		INSERT INTO income (id, user_id, recorded_at, annual, note) VALUES (?, ?, ?, ?, ?)`,
		id, user, on.String(), annual.Amount().String(), note)
	if err != nil {
		return "", fmt.Errorf("cannot record income: %w", err)
	}
	return id, nil
}

// Incomes returns income history, most recent first.
func (s *Store) Incomes(user string) ([]Income, error) {
	rows, err := s.db.Query(`
		SELECT id, recorded_at, annual, note FROM income
		WHERE user_id = ? ORDER BY recorded_at DESC`, user)
	if err != nil {
		return nil, fmt.Errorf("cannot load income history: %w", err)
	}
	defer rows.Close()

	var incomes []Income
	for rows.Next() {
		var id, date, annual, note string
		if err := rows.Scan(&id, &date, &annual, &note); err != nil {
			return nil, err
		}
		on, err := networth.ParseDate(date)
		if err != nil {
			return nil, err
		}
		a, err := parseDecimal("annual", annual)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, Income{ID: id, RecordedAt: on, Annual: networth.TWD(a), Note: note})
	}
	return incomes, rows.Err()
}
