package service

import (
	"context"
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"gorm.io/gorm"

	"masjidhub_backend/internals/features/admins/model"
)

// GoogleTokenVerifier memverifikasi ID token Google lalu mencocokkan
// email-nya ke tabel admin_users. Admin tetap harus terdaftar & aktif.
type GoogleTokenVerifier struct {
	DB       *gorm.DB
	ClientID string
}

func NewGoogleTokenVerifier(db *gorm.DB, clientID string) *GoogleTokenVerifier {
	return &GoogleTokenVerifier{DB: db, ClientID: clientID}
}

func (v *GoogleTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (Identity, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" || v.ClientID == "" {
		return Identity{}, ErrInvalidCredentials
	}

	verifier := googleAuthIDTokenVerifier.Verifier{}
	if err := verifier.VerifyIDToken(idToken, []string{v.ClientID}); err != nil {
		return Identity{}, ErrInvalidCredentials
	}
	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil || strings.TrimSpace(claims.Email) == "" {
		return Identity{}, ErrInvalidCredentials
	}

	var admin model.AdminUserModel
	err = v.DB.WithContext(ctx).
		Where("admin_user_email = ? AND admin_user_is_active = true", strings.ToLower(claims.Email)).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, err
	}

	return identityOf(admin), nil
}
