package schema

import "time"

// KeyValueStore represents the key_value_store table - operational state keyed by string
// The reconcile sweeper stores the last outcome of each asset under reconcile:last:<asset_id>
type KeyValueStore struct {
	// Key is the unique state key
	Key string `gorm:"column:key;primaryKey;type:text"`
	// Value is the serialized state, usually JSON
	Value string `gorm:"column:value;not null;type:text"`
	// CreatedAt is the timestamp when the key was first written
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;type:timestamptz"`
	// UpdatedAt is the timestamp of the last write
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime;type:timestamptz"`
}

// TableName specifies the table name for the KeyValueStore model
func (KeyValueStore) TableName() string {
	return "key_value_store"
}
