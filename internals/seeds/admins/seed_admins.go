package admins

import (
	"encoding/json"
	"log"
	"os"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"masjidhub_backend/internals/features/admins/model"
)

type AdminSeed struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

func SeedAdminsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file admin:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []AdminSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.AdminUserModel
		if err := db.Where("admin_user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Admin dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		// 🔐 Hash password sebelum disimpan
		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		roles := data.Roles
		if len(roles) == 0 {
			roles = []string{"admin"}
		}

		newAdmin := model.AdminUserModel{
			AdminUserUsername: data.Username,
			AdminUserEmail:    data.Email,
			AdminUserPassword: string(hashed),
			AdminUserRoles:    pq.StringArray(roles),
			AdminUserIsActive: true,
		}

		if err := db.Create(&newAdmin).Error; err != nil {
			log.Printf("❌ Gagal insert admin '%s': %v", data.Email, err)
		} else {
			log.Printf("✅ Berhasil insert admin '%s'", data.Email)
		}
	}
}
