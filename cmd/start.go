package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"ue-intellisense/core/loader"
	"ue-intellisense/core/logger"
	"ue-intellisense/core/middleware/auth"
	"ue-intellisense/core/middleware/rayid"
	"ue-intellisense/feature/cppstandard"
	"ue-intellisense/feature/history"
	"ue-intellisense/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "ue-intellisense/docs/swagger"
)

// @title UE IntelliSense API
// @version 1.0
// @description API for keeping Unreal Engine c_cpp_properties.json files consistent.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the IntelliSense HTTP server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Configuration, logger and optional backends
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close()
		logg := rt.log
		zap.ReplaceGlobals(logg)

		// 2. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 3. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(cppstandard.NewFeature(rt.cppStandardService(), logg))
		mgr.Register(history.NewFeature(rt.history, logg))
		mgr.Register(integrity.NewFeature(rt.cfg.Project, rt.store, rt.cfg.Storage, logg, rt.db))

		// RayID must be first to trace everything
		app.Use(rayid.New())

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

		// Swagger documentation stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{
			ApiKey:       rt.cfg.Server.ApiKey,
			SkipPrefixes: []string{"/swagger"},
		}))
		if !rt.cfg.Server.AuthEnabled() {
			logg.Warn("Server API key is empty, requests are not authenticated")
		}

		// 4. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 5. Start Server
		errCh := make(chan error, 1)
		go func() {
			addr := rt.cfg.Server.Address()
			logg.Info("Starting server", zap.String("address", addr), zap.String("project", rt.cfg.Project.Root))
			errCh <- app.Listen(addr)
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-c:
		}
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
