package model

import "time"

// AddressModel is the GORM-specific struct for the 'addresses' table.
// Rows are insert-only: the dispatch core never updates or deletes them.
type AddressModel struct {
	ID         uint     `gorm:"primaryKey"`
	Name       string   `gorm:"type:varchar(200);not null;uniqueIndex:idx_addresses_on_name"`
	Longitude  *float64 `gorm:"type:decimal(11,8)"`
	Latitude   *float64 `gorm:"type:decimal(10,8)"`
	ResolvedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
