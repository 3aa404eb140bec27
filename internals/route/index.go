// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "collegeschedule_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, admin routeDetails.AdminDeps) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== API =====================
	log.Println("[INFO] Setting up API group (/api/v1)...")
	api := app.Group("/api/v1")
	routeDetails.CollegeAPIRoutes(api, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.CollegePublicRoutes(app, public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Mounting admin routes (login + board)...")
	routeDetails.AdminRoutes(app, admin)
}
