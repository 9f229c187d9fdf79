package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"linen-tracker/core/config"
	"linen-tracker/core/database"
	"linen-tracker/core/fetch"
	"linen-tracker/core/loader"
	"linen-tracker/core/logger"
	"linen-tracker/core/middleware/auth"
	"linen-tracker/core/middleware/rayid"

	"linen-tracker/feature/catalog"
	catalogModels "linen-tracker/feature/catalog/models"
	"linen-tracker/feature/dashboard"
	"linen-tracker/feature/reinforcement"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "linen-tracker/docs/swagger"
)

// @title Linen Tracker API
// @version 1.0
// @description API for reconciling RFID-tagged surgical linen.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the linen tracker server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(
			&catalogModels.Client{},
			&catalogModels.Garment{},
			&catalogModels.PackRecipe{},
			&catalogModels.Target{},
			&reinforcement.Request{},
		); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		// 4. Initialize Export Fetching
		source, err := fetch.NewRouter(cfg.Fetch)
		if err != nil {
			logg.Fatal("Failed to create fetch router", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(catalog.NewFeature(db, logg))
		mgr.Register(dashboard.NewFeature(db, source, logg))
		mgr.Register(reinforcement.NewFeature(db, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
