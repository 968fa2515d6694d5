package main

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"ghorbari_backend/config"
	"ghorbari_backend/handlers"
	"ghorbari_backend/middleware"
	"ghorbari_backend/repository"
	"ghorbari_backend/services"
	"ghorbari_backend/utils"
)

func main() {
	config.SetupLogger()
	cfg := config.LoadConfig()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if len(os.Args) > 1 && os.Args[1] == "reset" {
		if err := config.ResetAndMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("failed to reset database")
		}
	} else if err := config.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	propertyRepo := repository.NewGormPropertyRepository(db)
	referenceRepo := repository.NewGormReferenceRepository(db)
	sellerRepo := repository.NewGormSellerRepository(db)
	buyerRepo := repository.NewGormBuyerRepository(db)

	queryService := services.NewPropertyQueryService(propertyRepo, referenceRepo)
	mutationService := services.NewPropertyMutationService(propertyRepo, sellerRepo)
	referenceService := services.NewReferenceService(referenceRepo)

	authHandler := handlers.NewAuthHandler(sellerRepo, buyerRepo)
	propertyHandler := handlers.NewPropertyHandler(queryService, mutationService)
	referenceHandler := handlers.NewReferenceHandler(referenceService)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir)

	app := fiber.New(fiber.Config{
		AppName:      "Ghorbari Backend",
		ServerHeader: "Ghorbari Backend Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	if err := os.MkdirAll(filepath.Join(cfg.UploadDir, "properties"), 0o755); err != nil {
		log.Fatal().Err(err).Msg("failed to create upload directory")
	}

	middleware.SetupMiddleware(app)
	app.Static("/uploads", cfg.UploadDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/:role/register", authHandler.Register)
	auth.Post("/:role/login", authHandler.Login)
	auth.Post("/:role/exists", authHandler.Exists)

	api.Use(utils.AuthMiddleware)
	api.Get("/divisions", referenceHandler.GetDivisions)
	api.Get("/districts", referenceHandler.GetDistricts)
	api.Get("/properties", propertyHandler.GetProperties)
	api.Post("/upload", uploadHandler.UploadImage)

	seller := api.Group("/seller", utils.RequireSeller)
	seller.Get("/properties", propertyHandler.GetMyProperties)
	seller.Post("/properties", propertyHandler.CreateProperty)
	seller.Put("/properties/:id", propertyHandler.UpdateProperty)
	seller.Delete("/properties/:id", propertyHandler.DeleteProperty)

	middleware.SetupNotFoundHandler(app)

	log.Info().Str("host", cfg.Host).Str("port", cfg.AppPort).Msg("server starting")

	if err := app.Listen(cfg.Host + ":" + cfg.AppPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
