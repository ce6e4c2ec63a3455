package cppstandard

import (
	"ue-intellisense/core/logger"
	"ue-intellisense/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for cppStandard reconciliation.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the cppstandard routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/cppstandard")
	group.Get("/", h.HandleInspect)
	group.Post("/fix", h.HandleFix)
}

// HandleInspect reports what a fix would change.
// @Summary Inspect cppStandard
// @Description Compares the configured cppStandard override with every c_cpp_properties.json configuration and the cpptools settings. Nothing is written.
// @Tags cppstandard
// @Produce json
// @Param cpp_standard query string false "Override to use instead of the configured one"
// @Success 200 {object} cppstandard.Report
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cppstandard [get]
func (h *Handler) HandleInspect(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var opts Options
	if c.Context().QueryArgs().Has("cpp_standard") {
		opts.CppStandard = utils.Ptr(c.Query("cpp_standard"))
	}

	report, err := h.service.Inspect(c.Context(), opts)
	if err != nil {
		l.Error("cppStandard inspection failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleFix applies the configured cppStandard override.
// @Summary Fix cppStandard
// @Description Writes the cppStandard override into every c_cpp_properties.json configuration, optionally backing the files up first.
// @Tags cppstandard
// @Accept json
// @Produce json
// @Param options body cppstandard.Options false "Fix options"
// @Success 200 {object} cppstandard.Report
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cppstandard/fix [post]
func (h *Handler) HandleFix(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var opts Options
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&opts); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	report, err := h.service.Fix(c.Context(), opts)
	if err != nil {
		l.Error("cppStandard fix failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("cppStandard fix completed",
		zap.String("run_id", report.RunID),
		zap.Int("changes", len(report.Changes)),
		zap.Bool("applied", report.Applied))
	return c.JSON(report)
}
