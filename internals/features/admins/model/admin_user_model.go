package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type AdminUserModel struct {
	AdminUserID        uuid.UUID      `gorm:"column:admin_user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_user_id"`
	AdminUserUsername  string         `gorm:"column:admin_user_username;type:varchar(50);uniqueIndex;not null"    json:"admin_user_username"`
	AdminUserEmail     string         `gorm:"column:admin_user_email;type:varchar(255);uniqueIndex"               json:"admin_user_email"`
	AdminUserPassword  string         `gorm:"column:admin_user_password;type:varchar(255);not null"               json:"-"`
	AdminUserRoles     pq.StringArray `gorm:"column:admin_user_roles;type:text[]"                                 json:"admin_user_roles"`
	AdminUserIsActive  bool           `gorm:"column:admin_user_is_active;default:true"                            json:"admin_user_is_active"`
	AdminUserCreatedAt time.Time      `gorm:"column:admin_user_created_at;type:timestamptz;autoCreateTime"        json:"admin_user_created_at"`
	AdminUserUpdatedAt time.Time      `gorm:"column:admin_user_updated_at;type:timestamptz;autoUpdateTime"        json:"admin_user_updated_at"`
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}
