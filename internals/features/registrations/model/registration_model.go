package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityRegistrationModel: baris pendaftaran kegiatan. Immutable —
// tidak ada kolom updated_at, tidak ada jalur update.
type ActivityRegistrationModel struct {
	RegistrationID           uuid.UUID `gorm:"column:registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"registration_id"`
	RegistrationFullName     string    `gorm:"column:registration_full_name;type:varchar(100);not null" json:"registration_full_name"`
	RegistrationPhone        string    `gorm:"column:registration_phone;type:varchar(20);not null" json:"registration_phone"`
	RegistrationEmail        string    `gorm:"column:registration_email;type:varchar(100);not null" json:"registration_email"`
	RegistrationActivityID   uuid.UUID `gorm:"column:registration_activity_id;type:uuid;not null;index" json:"registration_activity_id"`
	RegistrationActivityName string    `gorm:"column:registration_activity_name;type:varchar(150);not null" json:"registration_activity_name"`
	RegistrationCreatedAt    time.Time `gorm:"column:registration_created_at;autoCreateTime" json:"registration_created_at"`
}

func (ActivityRegistrationModel) TableName() string {
	return "activity_registrations"
}
