package main

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"wardrobe/internal/handlers"
	"wardrobe/internal/middleware"
	"wardrobe/internal/models"
	"wardrobe/internal/repositories"
	"wardrobe/internal/services"
	"wardrobe/pkg/rabbitmq"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "wardrobe.db")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_MINUTES", 60)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// The signing key lives for the whole process. Generating a fresh
	// key per token would invalidate every previously issued token.
	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = randomSecret()
		log.Println("JWT_SECRET not set, generated a process-scoped signing key; tokens will not survive a restart")
	}

	// --- Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&models.Color{}, &models.ClothesType{}, &models.Clothes{}, &models.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, events disabled: %v", err)
		} else {
			defer mqClient.Close()
			events = mqClient
		}
	}

	// --- Repositories ---
	colorRepo := repositories.NewGORMColorRepository(db)
	typeRepo := repositories.NewGORMClothesTypeRepository(db)
	clothesRepo := repositories.NewGORMClothesRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Services ---
	resolver := services.NewReferenceResolver(colorRepo, typeRepo)
	colorService := services.NewColorService(colorRepo, events)
	typeService := services.NewClothesTypeService(typeRepo, events)
	clothesService := services.NewClothesService(clothesRepo, resolver, events)
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, events, jwtSecret, viper.GetInt("JWT_EXPIRY_MINUTES"))

	// --- Handlers ---
	colorHandler := handlers.NewColorHandler(colorService)
	typeHandler := handlers.NewClothesTypeHandler(typeService)
	clothesHandler := handlers.NewClothesHandler(clothesService)
	userHandler := handlers.NewUserHandler(authService, userService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")
	userHandler.RegisterPublicRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	colorHandler.RegisterRoutes(protected)
	typeHandler.RegisterRoutes(protected)
	clothesHandler.RegisterRoutes(protected)
	userHandler.RegisterProtectedRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Event consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for wardrobe events...")
			handler := func(msg amqp.Delivery) error {
				log.Printf("Received event %s: %s", msg.Type, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeWardrobeEvents(handler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openDatabase opens the configured database. TranslateError makes
// unique-constraint violations surface as gorm.ErrDuplicatedKey so the
// repositories can map them onto Conflict. Foreign-key constraints are
// not migrated: colors and clothes types delete freely while clothes
// still reference them, and the dangling reference resolves to a nil
// attachment on read. An enforced constraint would make that delete
// fail on postgres but succeed on sqlite.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}
	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), cfg)
	default:
		return gorm.Open(sqlite.Open(dsn), cfg)
	}
}

// randomSecret returns a fresh 256-bit key, hex encoded.
func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Failed to generate signing key: %v", err)
	}
	return hex.EncodeToString(buf)
}
