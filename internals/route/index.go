package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ActivityRoute "masjidhub_backend/internals/features/activities/route"
	AuthRoute "masjidhub_backend/internals/features/admins/route"
	FacilityRoute "masjidhub_backend/internals/features/facilities/route"
	LeadershipRoute "masjidhub_backend/internals/features/leadership/route"
	MediaRoute "masjidhub_backend/internals/features/media/route"
	MessageRoute "masjidhub_backend/internals/features/messages/route"
	RegistrationRoute "masjidhub_backend/internals/features/registrations/route"
	"masjidhub_backend/internals/helpers/oss"
	authMiddleware "masjidhub_backend/internals/middlewares/auth"
	"masjidhub_backend/internals/mirror"
)

// SetupRoutes memasang tiga permukaan API:
//
//	/api/auth   → login admin (rate-limited)
//	/api/public → konten situs + form publik
//	/api/a      → konsol admin (JWT)
func SetupRoutes(app *fiber.App, db *gorm.DB, m *mirror.Mirror, g *oss.Gatekeeper) {
	AuthRoute.AuthRoutes(app, db)

	public := app.Group("/api/public")
	LeadershipRoute.AllLeadershipRoutes(public, m)
	FacilityRoute.AllFacilityRoutes(public, m)
	ActivityRoute.AllActivityRoutes(public, m)
	MediaRoute.AllMediaRoutes(public, m)
	MessageRoute.AllMessageRoutes(public, m)
	RegistrationRoute.AllRegistrationRoutes(public, db, m)

	admin := app.Group("/api/a", authMiddleware.AdminAuth(db))
	AuthRoute.AdminAuthRoutes(admin, db)
	LeadershipRoute.LeadershipAdminRoutes(admin, m)
	FacilityRoute.FacilityAdminRoutes(admin, m)
	ActivityRoute.ActivityAdminRoutes(admin, m)
	MediaRoute.MediaAdminRoutes(admin, m, g)
	MessageRoute.MessageAdminRoutes(admin, m)
	RegistrationRoute.RegistrationAdminRoutes(admin, db, m)
}
