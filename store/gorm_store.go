package store

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record -> satu baris per key di tabel "records". Value NULL adalah
// tombstone hasil Delete, supaya revision tetap naik dan poller di
// terminal lain ikut melihat penghapusan.
type Record struct {
	Key       string  `gorm:"primaryKey;type:varchar(191)"`
	Value     *string `gorm:"type:text"`
	Rev       int64   `gorm:"not null;index"`
	UpdatedAt time.Time
}

// GormStore menyimpan record lewat gorm (sqlite untuk dev/test, mysql
// untuk deploy, dipilih di config).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(key string, out any) error {
	var rec Record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if rec.Value == nil {
		return ErrNotFound
	}
	return json.Unmarshal([]byte(*rec.Value), out)
}

func (s *GormStore) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	val := string(raw)
	return s.write(key, &val)
}

func (s *GormStore) Delete(key string) error {
	return s.write(key, nil)
}

// write -> upsert satu record dengan revision baru dalam satu transaksi
func (s *GormStore) write(key string, value *string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		rev, err := maxRev(tx)
		if err != nil {
			return err
		}
		rec := Record{
			Key:       key,
			Value:     value,
			Rev:       rev + 1,
			UpdatedAt: time.Now(),
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "rev", "updated_at"}),
		}).Create(&rec).Error
	})
}

func (s *GormStore) Revision() (int64, error) {
	return maxRev(s.db)
}

func maxRev(db *gorm.DB) (int64, error) {
	var rev int64
	err := db.Model(&Record{}).Select("COALESCE(MAX(rev), 0)").Scan(&rev).Error
	return rev, err
}
