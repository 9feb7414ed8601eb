package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/paintraffle/internal/lifecycle"
	"github.com/nurpe/paintraffle/internal/region"
	"github.com/nurpe/paintraffle/internal/service"
	"github.com/nurpe/paintraffle/internal/validation"
)

type Handler struct {
	contractors *service.ContractorService
	validators  *service.ValidatorService
	projects    *service.ProjectService
	raffles     *service.RaffleService
	log         zerolog.Logger
}

func NewHandler(contractors *service.ContractorService, validators *service.ValidatorService, projects *service.ProjectService, raffles *service.RaffleService, log zerolog.Logger) *Handler {
	return &Handler{contractors: contractors, validators: validators, projects: projects, raffles: raffles, log: log}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleError maps domain errors to HTTP responses. Field errors are
// returned whole so every failing field can be shown inline at once;
// lifecycle precondition failures become one actionable message.
func (h *Handler) handleError(c *gin.Context, err error) {
	var fieldErrs validation.FieldErrors
	var violation *lifecycle.Violation

	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
	case errors.As(err, &violation):
		c.JSON(http.StatusConflict, gin.H{"error": violation.Error()})
	case errors.Is(err, lifecycle.ErrMissingRejectionReason),
		errors.Is(err, lifecycle.ErrMissingConfirmation),
		errors.Is(err, lifecycle.ErrNotOwner):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, region.ErrUnknownRegion):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
