package wallet

import (
	"errors"
	"fmt"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/errs"
)

// ErrWalletIsNotConstructed is returned when a Wallet instance was not
// created through NewWallet or RestoreWallet.
var ErrWalletIsNotConstructed = errors.New("Wallet must be created via NewWallet or RestoreWallet")

// ErrInsufficientFunds is returned when a debit would push the balance
// below zero. The balance is left untouched.
var ErrInsufficientFunds = errors.New("insufficient funds")

// InsufficientFundsError carries the balance and the attempted debit.
type InsufficientFundsError struct {
	Balance float64
	Amount  float64
}

// NewInsufficientFundsError creates an InsufficientFundsError.
func NewInsufficientFundsError(balance, amount float64) *InsufficientFundsError {
	return &InsufficientFundsError{Balance: balance, Amount: amount}
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: balance %.2f, requested %.2f", ErrInsufficientFunds, e.Balance, e.Amount)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// Wallet is the aggregate holding a single user's balance. Every user
// and every carrier owner has exactly one wallet. Balance changes only
// through Debit and Credit, and the calling use case persists them in
// the same transaction as the order change that caused them.
type Wallet struct {
	id      kernel.UUID
	userID  kernel.UUID
	balance float64

	isConstructed bool
}

// NewWallet creates an empty wallet for a user.
func NewWallet(id kernel.UUID, userID kernel.UUID) (*Wallet, error) {
	w := &Wallet{isConstructed: true}

	if err := errors.Join(
		w.setID(id),
		w.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWallet rebuilds a wallet from persistence.
func RestoreWallet(id kernel.UUID, userID kernel.UUID, balance float64) (*Wallet, error) {
	w, err := NewWallet(id, userID)
	if err != nil {
		return nil, err
	}
	if balance < 0 {
		return nil, errs.NewValueIsInvalidError("balance")
	}

	w.balance = balance
	return w, nil
}

// Validate ensures the wallet came from a constructor.
func (w *Wallet) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWalletIsNotConstructed
	}
	return nil
}

// ID returns the wallet identifier.
func (w *Wallet) ID() kernel.UUID { return w.id }

// UserID returns the wallet owner.
func (w *Wallet) UserID() kernel.UUID { return w.userID }

// Balance returns the current balance.
func (w *Wallet) Balance() float64 { return w.balance }

// Debit withdraws amount from the wallet. The balance must fully cover
// the amount; otherwise InsufficientFundsError is returned and nothing
// changes.
func (w *Wallet) Debit(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("amount")
	}
	if w.balance < amount {
		return NewInsufficientFundsError(w.balance, amount)
	}

	w.balance -= amount
	return nil
}

// Credit deposits amount into the wallet.
func (w *Wallet) Credit(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	w.balance += amount
	return nil
}

func (w *Wallet) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Wallet) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	w.userID = userID
	return nil
}
