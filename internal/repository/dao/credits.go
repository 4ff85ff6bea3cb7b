package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrInsufficientCredits = errors.New("insufficient credits")

// Credits is the single balance row of an account.
type Credits struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	Balance   int  `gorm:"not null"`
	UpdatedAt time.Time
}

func (Credits) TableName() string {
	return "credits"
}

type CreditsDAO struct {
	db             *gorm.DB
	defaultBalance int
}

func NewCreditsDAO(db *gorm.DB, defaultBalance int) *CreditsDAO {
	return &CreditsDAO{
		db:             db,
		defaultBalance: defaultBalance,
	}
}

// FindByUserID returns the balance row, creating it with the default
// balance on first access.
func (d *CreditsDAO) FindByUserID(ctx context.Context, userID uint) (Credits, error) {
	return d.findOrCreate(d.db.WithContext(ctx), userID)
}

func (d *CreditsDAO) findOrCreate(tx *gorm.DB, userID uint) (Credits, error) {
	var credits Credits

	result := tx.
		Where(Credits{UserID: userID}).
		Attrs(Credits{Balance: d.defaultBalance}).
		FirstOrCreate(&credits)
	if result.Error != nil {
		return Credits{}, result.Error
	}

	return credits, nil
}

func (d *CreditsDAO) Add(ctx context.Context, userID uint, amount int) (Credits, error) {
	var credits Credits

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := d.findOrCreate(tx, userID); err != nil {
			return err
		}

		result := tx.Model(&Credits{}).
			Where("user_id = ?", userID).
			UpdateColumn("balance", gorm.Expr("balance + ?", amount))
		if result.Error != nil {
			return result.Error
		}

		return tx.First(&credits, "user_id = ?", userID).Error
	})
	if err != nil {
		return Credits{}, err
	}

	return credits, nil
}

// Deduct subtracts amount only if the balance covers it. On
// ErrInsufficientCredits the returned row holds the untouched balance.
func (d *CreditsDAO) Deduct(ctx context.Context, userID uint, amount int) (Credits, error) {
	var credits Credits

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := d.findOrCreate(tx, userID); err != nil {
			return err
		}

		result := tx.Model(&Credits{}).
			Where("user_id = ? AND balance >= ?", userID, amount).
			UpdateColumn("balance", gorm.Expr("balance - ?", amount))
		if result.Error != nil {
			return result.Error
		}

		if err := tx.First(&credits, "user_id = ?", userID).Error; err != nil {
			return err
		}

		if result.RowsAffected == 0 {
			return ErrInsufficientCredits
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientCredits) {
			return credits, ErrInsufficientCredits
		}
		return Credits{}, err
	}

	return credits, nil
}

func (d *CreditsDAO) Set(ctx context.Context, userID uint, balance int) (Credits, error) {
	credits := Credits{UserID: userID, Balance: balance}

	result := d.db.WithContext(ctx).Save(&credits)
	if result.Error != nil {
		return Credits{}, result.Error
	}

	return credits, nil
}
