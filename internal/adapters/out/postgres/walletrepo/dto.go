// Package walletrepo persists wallet aggregates. Every balance change
// runs inside a unit-of-work transaction together with the order
// mutation that caused it.
package walletrepo

import (
	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/wallet"

	"github.com/google/uuid"
)

// WalletDTO is the database row for a wallet aggregate.
type WalletDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Balance float64
}

// TableName overrides GORM's default naming.
func (WalletDTO) TableName() string {
	return "wallets"
}

func fromDomain(aggregate *wallet.Wallet) WalletDTO {
	return WalletDTO{
		ID:      aggregate.ID().Bytes(),
		UserID:  aggregate.UserID().Bytes(),
		Balance: aggregate.Balance(),
	}
}

func toDomain(dto WalletDTO) (*wallet.Wallet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return wallet.RestoreWallet(id, userID, dto.Balance)
}
