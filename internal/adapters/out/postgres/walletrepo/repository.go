package walletrepo

import (
	"context"
	"errors"
	"fmt"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/wallet"
	"couriernet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aggregateTracker lets the unit of work record every aggregate that
// passed through a repository.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// Repository is the PostgreSQL implementation of ports.WalletRepository.
type Repository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewRepository creates the wallet repository bound to the given
// connection (or transaction) and tracker.
func NewRepository(db *gorm.DB, tracker aggregateTracker) *Repository {
	return &Repository{db: db, tracker: tracker}
}

// Add persists a new wallet.
func (r *Repository) Add(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// Update persists a changed balance.
func (r *Repository) Update(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WalletDTO{}).
		Where("id = ?", dto.ID).
		Update("balance", dto.Balance)
	if result.Error != nil {
		return fmt.Errorf("update wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("wallet", aggregate.ID().String())
	}
	return nil
}

// GetByUser retrieves the user's wallet.
func (r *Repository) GetByUser(ctx context.Context, userID kernel.UUID) (*wallet.Wallet, error) {
	return r.getByUser(ctx, r.db.WithContext(ctx), userID)
}

// GetByUserForUpdate retrieves the user's wallet under a row lock held
// until the surrounding transaction ends. Debits and credits take this
// lock so concurrent settlements against one wallet serialize.
func (r *Repository) GetByUserForUpdate(ctx context.Context, userID kernel.UUID) (*wallet.Wallet, error) {
	locked := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.getByUser(ctx, locked, userID)
}

func (r *Repository) getByUser(_ context.Context, db *gorm.DB, userID kernel.UUID) (*wallet.Wallet, error) {
	var dto WalletDTO
	err := db.First(&dto, "user_id = ?", userID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("wallet", userID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("select wallet: %w", err)
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}
