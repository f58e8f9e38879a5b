package mirror

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentSlotModel struct {
	ContentSlotKey       string         `gorm:"column:content_slot_key;type:varchar(64);primaryKey" json:"content_slot_key"`
	ContentSlotPayload   datatypes.JSON `gorm:"column:content_slot_payload;type:jsonb;not null"     json:"content_slot_payload"`
	ContentSlotUpdatedAt time.Time      `gorm:"column:content_slot_updated_at;type:timestamptz;autoUpdateTime" json:"content_slot_updated_at"`
}

func (ContentSlotModel) TableName() string {
	return "content_slots"
}

// GormSidestore menyimpan slot mirror di tabel content_slots.
type GormSidestore struct {
	DB *gorm.DB
}

func NewGormSidestore(db *gorm.DB) *GormSidestore {
	return &GormSidestore{DB: db}
}

func (s *GormSidestore) Load(slot string) ([]byte, bool, error) {
	var row ContentSlotModel
	err := s.DB.Where("content_slot_key = ?", slot).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(row.ContentSlotPayload), true, nil
}

func (s *GormSidestore) Save(slot string, payload []byte) error {
	row := ContentSlotModel{
		ContentSlotKey:     slot,
		ContentSlotPayload: datatypes.JSON(payload),
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "content_slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"content_slot_payload", "content_slot_updated_at"}),
	}).Create(&row).Error
}
