package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/excelerateanalytics/website/pkg/config"
	"github.com/excelerateanalytics/website/pkg/logger"
	"github.com/excelerateanalytics/website/pkg/models"
	"github.com/excelerateanalytics/website/pkg/services"
	"github.com/excelerateanalytics/website/pkg/views"
)

// Handlers contains all HTTP handlers for the site
type Handlers struct {
	intakeService services.IntakeService
	contact       config.ContactConfig
	now           func() time.Time
	log           *slog.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(intakeService services.IntakeService, contact config.ContactConfig, log *slog.Logger) *Handlers {
	return &Handlers{
		intakeService: intakeService,
		contact:       contact,
		now:           time.Now,
		log:           log.With(logger.Scope("api")),
	}
}

// Register mounts every route on router
func (h *Handlers) Register(router gin.IRouter) {
	router.GET("/", h.LandingPage)
	router.POST("/consultation", h.SubmitConsultation)
	router.POST("/api/consultation", h.SubmitConsultationJSON)
	router.GET("/health", h.HealthCheck)
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// LandingPage renders the marketing page with an empty form
func (h *Handlers) LandingPage(c *gin.Context) {
	h.renderPage(c, http.StatusOK, views.Notice{})
}

// SubmitConsultation handles the browser form post and re-renders the page
// with the outcome. The form is never repopulated.
func (h *Handlers) SubmitConsultation(c *gin.Context) {
	var req models.ConsultationRequest
	if err := c.ShouldBind(&req); err != nil {
		h.log.Warn("error binding form", logger.Error(err))
		h.renderPage(c, http.StatusBadRequest, views.Notice{Failure: services.FailureMessage(h.contact.Email)})
		return
	}

	res := h.intakeService.Submit(c.Request.Context(), req)

	switch res.Outcome {
	case services.OutcomeRejected:
		h.renderPage(c, http.StatusUnprocessableEntity, views.Notice{Errors: res.Errors})
	case services.OutcomeFailed:
		h.renderPage(c, http.StatusInternalServerError, views.Notice{Failure: res.Message})
	default:
		h.renderPage(c, http.StatusOK, views.Notice{Success: res.Message})
	}
}

// SubmitConsultationJSON runs the same flow for JSON clients
func (h *Handlers) SubmitConsultationJSON(c *gin.Context) {
	var req models.ConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("error parsing JSON", logger.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	res := h.intakeService.Submit(c.Request.Context(), req)

	switch res.Outcome {
	case services.OutcomeRejected:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": res.Outcome,
			"errors": res.Errors,
		})
	case services.OutcomeFailed:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  res.Outcome,
			"message": res.Message,
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"status":  res.Outcome,
			"message": res.Message,
		})
	}
}

func (h *Handlers) renderPage(c *gin.Context, status int, notice views.Notice) {
	page := views.LandingPage(views.LandingData{
		Business: services.BusinessName,
		Contact: views.Contact{
			Email:    h.contact.Email,
			Phone:    h.contact.Phone,
			Location: h.contact.Location,
		},
		RevenueRanges: models.RevenueRanges,
		Year:          h.now().Year(),
		Notice:        notice,
	})
	h.render(c, status, page)
}

func (h *Handlers) render(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		h.log.Error("error rendering page", logger.Error(err))
	}
}
