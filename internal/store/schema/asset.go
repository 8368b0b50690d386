package schema

import "time"

// Asset represents the assets table - a tradable token whose fees are split between the platform and earners
type Asset struct {
	// ID is the token mint address on Solana
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the display name of the token
	Name string `gorm:"column:name;not null;type:text"`
	// Symbol is the ticker symbol of the token
	Symbol string `gorm:"column:symbol;not null;type:text"`
	// CreatedAt is the timestamp when the asset was launched
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}
