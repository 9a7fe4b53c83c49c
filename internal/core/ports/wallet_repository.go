package ports

import (
	"context"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/wallet"
)

// WalletRepository defines the persistence contract for wallets.
type WalletRepository interface {
	// Add persists a new wallet.
	Add(ctx context.Context, aggregate *wallet.Wallet) error

	// Update persists a changed balance.
	Update(ctx context.Context, aggregate *wallet.Wallet) error

	// GetByUser retrieves the user's wallet.
	GetByUser(ctx context.Context, userID kernel.UUID) (*wallet.Wallet, error)

	// GetByUserForUpdate retrieves the user's wallet under a row lock
	// held until the surrounding transaction ends. Debits and credits
	// take this lock so concurrent settlements against one wallet
	// serialize.
	GetByUserForUpdate(ctx context.Context, userID kernel.UUID) (*wallet.Wallet, error)
}
