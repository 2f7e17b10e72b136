package engine

import (
	"errors"

	"github.com/ssoylu/wordwheel/internal/config"
)

// ErrInsufficientGold is returned by TrySpend when the balance cannot cover
// the requested amount. The balance is left unchanged.
var ErrInsufficientGold = errors.New("engine: insufficient gold")

// Ledger owns the player's gold balance. The balance never goes negative:
// a spend either fully succeeds or fully fails on a single sufficiency check.
type Ledger struct {
	store   Store
	cfg     config.Gold
	bus     *Bus
	balance int
}

// NewLedger restores the persisted balance, or seeds the configured
// first-run amount.
func NewLedger(store Store, cfg config.Gold, bus *Bus) *Ledger {
	return &Ledger{
		store:   store,
		cfg:     cfg,
		bus:     bus,
		balance: store.GetInt(KeyGold, cfg.Initial()),
	}
}

// Balance returns the current gold balance.
func (l *Ledger) Balance() int {
	return l.balance
}

// Add credits amount to the balance. Negative amounts are ignored; debits go
// through TrySpend.
func (l *Ledger) Add(amount int) {
	if amount <= 0 {
		return
	}
	l.balance += amount
	l.persist()
}

// TrySpend atomically debits amount if the balance covers it. On failure the
// balance is unchanged and ErrInsufficientGold is returned.
func (l *Ledger) TrySpend(amount int) error {
	if amount < 0 {
		return nil
	}
	if l.balance < amount {
		return ErrInsufficientGold
	}
	l.balance -= amount
	l.persist()
	return nil
}

// Reset returns the balance to the configured starting amount.
func (l *Ledger) Reset() {
	l.balance = l.cfg.Initial()
	l.persist()
}

func (l *Ledger) persist() {
	l.store.SetInt(KeyGold, l.balance)
	l.bus.emitBalanceChanged(l.balance)
}
