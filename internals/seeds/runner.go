package seeds

import (
	"gorm.io/gorm"

	admins "masjidhub_backend/internals/seeds/admins"
)

func RunAllSeeds(db *gorm.DB) {
	//* Admin console
	admins.SeedAdminsFromJSON(db, "internals/seeds/admins/data_admins.json")
}
