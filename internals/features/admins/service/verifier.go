package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"masjidhub_backend/internals/constants"
	"masjidhub_backend/internals/features/admins/model"
)

// ErrInvalidCredentials adalah satu-satunya error auth yang dipropagasi
// ke caller; controller memetakannya ke 401.
var ErrInvalidCredentials = errors.New("username atau password salah")

type Identity struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

// CredentialVerifier: titik tukar identity provider. Implementasi default
// membaca tabel admin_users; implementasi lain (mis. Google ID token)
// bisa dipasang tanpa menyentuh session/route-guard.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (Identity, error)
}

type DBCredentialVerifier struct {
	DB *gorm.DB
}

func NewDBCredentialVerifier(db *gorm.DB) *DBCredentialVerifier {
	return &DBCredentialVerifier{DB: db}
}

func (v *DBCredentialVerifier) Verify(ctx context.Context, username, password string) (Identity, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" || password == "" {
		return Identity{}, ErrInvalidCredentials
	}

	var admin model.AdminUserModel
	err := v.DB.WithContext(ctx).
		Where("admin_user_username = ? AND admin_user_is_active = true", username).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.AdminUserPassword), []byte(password)) != nil {
		return Identity{}, ErrInvalidCredentials
	}

	return identityOf(admin), nil
}

func identityOf(admin model.AdminUserModel) Identity {
	role := constants.RoleAdmin
	if len(admin.AdminUserRoles) > 0 {
		role = admin.AdminUserRoles[0]
	}
	return Identity{
		ID:       admin.AdminUserID,
		Username: admin.AdminUserUsername,
		Role:     role,
	}
}
