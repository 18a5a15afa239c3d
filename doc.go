// Package networth turns a ledger of buy/sell transactions across Taiwanese
// equities, US equities and crypto into current holdings, realized and
// unrealized profit-and-loss, and a TWD-normalized net-asset figure tracked
// against a retirement target.
//
// The core is two pure functions: Holdings replays the ledger into per-ticker
// positions with a weighted-average cost basis, and Valuate normalizes those
// positions to TWD using live prices and a single USD/TWD rate. Persistence,
// market data and name lookups are collaborators behind narrow interfaces.
package networth
