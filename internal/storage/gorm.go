package storage

import (
	"github.com/jinzhu/gorm"
)

// KVEntry is the backing table for the gorm key-value store.
type KVEntry struct {
	Key   string `gorm:"primary_key;column:key"`
	Value string `gorm:"type:text;column:value"`
}

// TableName specifies the table name for KVEntry
func (KVEntry) TableName() string {
	return "kv_entries"
}

// GormKV persists key-value pairs through a gorm connection.
type GormKV struct {
	db *gorm.DB
}

// NewGormKV migrates the backing table and returns the store.
func NewGormKV(db *gorm.DB) (*GormKV, error) {
	if err := db.AutoMigrate(&KVEntry{}).Error; err != nil {
		return nil, err
	}
	return &GormKV{db: db}, nil
}

func (s *GormKV) Get(key string) (string, bool, error) {
	var entry KVEntry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if gorm.IsRecordNotFoundError(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *GormKV) Set(key, value string) error {
	entry := KVEntry{Key: key, Value: value}
	if s.db.Model(&KVEntry{}).Where("key = ?", key).Update("value", value).RowsAffected == 0 {
		return s.db.Create(&entry).Error
	}
	return nil
}

func (s *GormKV) Remove(key string) error {
	return s.db.Where("key = ?", key).Delete(&KVEntry{}).Error
}
