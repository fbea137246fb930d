package store

import (
	"errors"
	"fmt"

	"github.com/wellnesslog/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KV 为核心引擎依赖的不透明键值持久层
// 核心只关心按键整体读写字节，存储介质由实现决定
type KV interface {
	Save(key string, value []byte) error
	Load(key string) ([]byte, bool, error)
	Delete(key string) error
}

// GormKV 基于 app_states 表实现 KV
type GormKV struct {
	db *gorm.DB
}

// NewGormKV 构造 GormKV
func NewGormKV(gdb *gorm.DB) *GormKV {
	return &GormKV{db: gdb}
}

// Save 按键写入，已存在则覆盖
func (s *GormKV) Save(key string, value []byte) error {
	record := db.AppState{Key: key, Value: string(value)}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error; err != nil {
		return fmt.Errorf("save state %s: %w", key, err)
	}
	return nil
}

// Load 按键读取，不存在时第二个返回值为 false
func (s *GormKV) Load(key string) ([]byte, bool, error) {
	var record db.AppState
	if err := s.db.Where("key = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load state %s: %w", key, err)
	}
	return []byte(record.Value), true, nil
}

// Delete 按键删除，键不存在视作成功
func (s *GormKV) Delete(key string) error {
	if err := s.db.Where("key = ?", key).Delete(&db.AppState{}).Error; err != nil {
		return fmt.Errorf("delete state %s: %w", key, err)
	}
	return nil
}
