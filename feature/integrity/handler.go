package integrity

import (
	"ue-intellisense/core/logger"
	"ue-intellisense/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/workspace", h.HandleWorkspaceCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/server", h.HandleServerCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Workspace, Storage, Server) without fixing anything.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if wsReport, err := h.service.CheckWorkspace(); err != nil {
		report["workspace"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["workspace"] = wsReport
	}

	if stReport, err := h.service.CheckStorage(c.Context()); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = stReport
	}

	if srvReport, err := h.service.CheckServer(); err != nil {
		report["server"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["server"] = srvReport
	}

	return c.JSON(report)
}

// HandleWorkspaceCheck checks the project layout.
// @Summary Check Workspace
// @Description Checks that the main and engine folders exist, that their c_cpp_properties.json files are readable and that every configuration resolves a cppStandard.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.WorkspaceReport "Workspace Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/workspace [get]
func (h *Handler) HandleWorkspaceCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckWorkspace()
	if err != nil {
		l.Error("Workspace check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Healthy {
		l.Warn("Workspace issues detected", zap.Int("issues", len(report.Issues)))
	}
	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the backup bucket.
// @Summary Check Storage
// @Description Checks that the backup bucket and its backups/ folder exist. Optionally creates them.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create what is missing"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	report, err := h.service.CheckStorage(c.Context())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Healthy() {
		l.Warn("Storage is incomplete",
			zap.Bool("bucket_missing", report.BucketMissing),
			zap.Strings("missing", report.MissingFolders))

		if fix {
			l.Info("Attempting to fix storage")
			if err := h.service.FixStorage(c.Context(), report); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix storage",
					"details": err.Error(),
					"report":  report,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  report,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "checked",
		"report": report,
	})
}

// HandleServerCheck checks and optionally migrates the history tables.
// @Summary Check Server Schema
// @Description Checks if the history database schema matches the expected models. Optionally migrates it.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Run the migration"
// @Success 200 {object} checks.ServerReport "Server Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/server [get]
func (h *Handler) HandleServerCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting server schema check")

	report, err := h.service.CheckServer()
	if err != nil {
		l.Error("Server schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !report.Matched && utils.ToBool(c.Query("fix")) {
		if err := h.service.FixServer(); err != nil {
			l.Error("Server schema migration failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if report, err = h.service.CheckServer(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(report)
}
