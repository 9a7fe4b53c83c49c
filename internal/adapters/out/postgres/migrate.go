package postgres

import (
	"couriernet/internal/adapters/out/postgres/driverrepo"
	"couriernet/internal/adapters/out/postgres/orderrepo"
	"couriernet/internal/adapters/out/postgres/routerepo"
	"couriernet/internal/adapters/out/postgres/walletrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the adapters persist to.
// Run at startup; GORM only adds missing columns and indexes, it never
// drops data.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.StatusChangeDTO{},
		&orderrepo.ProblemDTO{},
		&routerepo.VehicleDTO{},
		&routerepo.RelationDTO{},
		&routerepo.StopDTO{},
		&routerepo.PriceListDTO{},
		&walletrepo.WalletDTO{},
		&driverrepo.DriverDTO{},
	)
}
