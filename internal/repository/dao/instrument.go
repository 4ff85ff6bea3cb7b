package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInstrumentNotFound = errors.New("instrument not found")

type Instrument struct {
	ID          uint    `gorm:"primaryKey"`
	Category    string  `gorm:"uniqueIndex;not null"`
	Name        string  `gorm:"not null"`
	Image       string  `gorm:"not null"`
	Price       int     `gorm:"not null"`
	Description string
	Rating      float32 `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type InstrumentDAO struct {
	db *gorm.DB
}

func NewInstrumentDAO(db *gorm.DB) *InstrumentDAO {
	return &InstrumentDAO{
		db: db,
	}
}

// Upsert writes the given rows keyed by category, keeping their order as
// insertion order for new rows.
func (d *InstrumentDAO) Upsert(ctx context.Context, instruments []Instrument) error {
	if len(instruments) == 0 {
		return nil
	}

	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "image", "price", "description", "rating", "updated_at"}),
	}).Create(&instruments)

	return result.Error
}

func (d *InstrumentDAO) FindAll(ctx context.Context) ([]Instrument, error) {
	var instruments []Instrument

	result := d.db.WithContext(ctx).Order("id").Find(&instruments)
	if result.Error != nil {
		return nil, result.Error
	}

	return instruments, nil
}

func (d *InstrumentDAO) FindByCategory(ctx context.Context, category string) (Instrument, error) {
	var instrument Instrument

	result := d.db.WithContext(ctx).First(&instrument, "LOWER(category) = LOWER(?)", category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Instrument{}, ErrInstrumentNotFound
		}

		return Instrument{}, result.Error
	}

	return instrument, nil
}
