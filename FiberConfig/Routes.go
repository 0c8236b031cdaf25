package FiberConfig

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"

	"ChecklistPro/Checklist"
	"ChecklistPro/Controllers"
	"ChecklistPro/Validation"
	"ChecklistPro/middleware"
)

// SetupRoutes wires every API endpoint. Reads need permission 1, edits 3,
// user administration 4.
func SetupRoutes(app *fiber.App, db *gorm.DB, service *Controllers.DocumentService) {
	validate := Validation.New()

	// Initialize handlers
	checklistController := Controllers.NewChecklistController(service)
	headerController := Controllers.NewHeaderController(service, validate)
	transferController := Controllers.NewTransferController(service)
	authController := Controllers.NewAuthController(db, validate, service)

	// Auth
	app.Post("/api/Login", authController.Login)
	app.Post("/api/Logout", authController.Logout)
	app.Get("/api/User", middleware.Verify(db, 1), authController.User)
	app.Post("/api/RegisterUser", middleware.Verify(db, 4), authController.RegisterUser)

	api := app.Group("/api", middleware.Verify(db, 1))

	// Document and projection
	api.Get("/document", checklistController.GetDocument)
	api.Get("/view", checklistController.GetView)
	api.Post("/clear-all", middleware.Verify(db, 3), checklistController.ClearAll)

	// Language
	api.Get("/language", checklistController.GetLanguage)
	api.Put("/language", middleware.Verify(db, 3), checklistController.SetLanguage)

	// Header metadata
	api.Get("/header", headerController.GetHeader)
	api.Patch("/header", middleware.Verify(db, 3), headerController.UpdateHeader)

	// Tasks
	tasks := api.Group("/tasks")
	tasks.Post("/", middleware.Verify(db, 3), checklistController.CreateTask)
	tasks.Post("/clear-answered", middleware.Verify(db, 3), checklistController.ClearAnswered)
	tasks.Post("/reset-answers", middleware.Verify(db, 3), checklistController.ResetAnswers)
	tasks.Put("/:id", middleware.Verify(db, 3), checklistController.EditTask)
	tasks.Delete("/:id", middleware.Verify(db, 3), checklistController.DeleteTask)
	tasks.Put("/:id/answer", middleware.Verify(db, 3), checklistController.SetAnswer)
	tasks.Post("/:id/cycle", middleware.Verify(db, 3), checklistController.CycleAnswer)
	tasks.Put("/:id/group", middleware.Verify(db, 3), checklistController.MoveTask)

	// Groups
	groups := api.Group("/groups")
	groups.Get("/", checklistController.GetGroups)
	groups.Post("/", middleware.Verify(db, 3), checklistController.CreateGroup)
	groups.Delete("/:id", middleware.Verify(db, 3), checklistController.DeleteGroup)

	// Import / export
	api.Post("/import", middleware.Verify(db, 3), transferController.Import)
	api.Get("/export/excel", transferController.ExportExcel)
	api.Get("/export/pdf", transferController.ExportPDF)
	api.Get("/export/template", transferController.Template)
}

// FiberConfig builds the app and serves it until the process exits.
func FiberConfig(db *gorm.DB, service *Controllers.DocumentService) {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views:     engine,
		BodyLimit: 20 * 1024 * 1024,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	// Credentialed cors cannot use a wildcard origin, so the allowed origins
	// come from the environment.
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		tr := service.Translator(c.Query("lang"))
		var total, answered int
		service.Read(func(doc *Checklist.Document) {
			total = len(doc.Tasks)
			answered = doc.AnsweredCount()
		})
		return c.Render("index", fiber.Map{
			"Title":    tr.T("appTitle"),
			"Subtitle": tr.T("appSubtitle"),
			"Answered": answered,
			"Total":    total,
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Static("/static", "static/")

	SetupRoutes(app, db, service)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
