package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"novanest_backend/internal/middleware"
	"novanest_backend/internal/models"
	"novanest_backend/internal/repositories"
	"novanest_backend/internal/services"
	"novanest_backend/internal/services/dto"
	"novanest_backend/pkg/apperrors"
)

type StartupHandler struct {
	*BaseHandler
	startupService services.StartupService
}

func NewStartupHandler(base *BaseHandler, startupService services.StartupService) *StartupHandler {
	return &StartupHandler{
		BaseHandler:    base,
		startupService: startupService,
	}
}

func (h *StartupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	startups := rg.Group("/startups")
	{
		startups.GET("", h.List)
		startups.GET("/my", h.ListMine)
		startups.GET("/:id", h.GetByID)
		startups.POST("", middleware.RequireRoles(models.UserRoleEntrepreneur), h.Create)
		startups.PUT("/:id", h.Update)
		startups.DELETE("/:id", h.Delete)
	}
}

func (h *StartupHandler) List(c *gin.Context) {
	var filter repositories.StartupFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	startups, err := h.startupService.List(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, startups)
}

func (h *StartupHandler) ListMine(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	startups, err := h.startupService.ListByFounder(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, startups)
}

func (h *StartupHandler) GetByID(c *gin.Context) {
	startup, err := h.startupService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, startup)
}

// Create consumes a multipart form: the startup fields plus the logo,
// pitchDeck and demoVideo file parts.
func (h *StartupHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateStartupRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	files, err := bindStartupFiles(c)
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid media upload"))
		return
	}

	startup, err := h.startupService.Create(c.Request.Context(), userID, &req, files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, startup)
}

// Update accepts a JSON body for plain field changes, or a multipart
// form when media is re-uploaded alongside them.
func (h *StartupHandler) Update(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStartupRequest
	files := services.StartupFiles{}
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if !h.BindAndValidate_Form(c, &req) {
			return
		}
		var err error
		if files, err = bindStartupFiles(c); err != nil {
			h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid media upload"))
			return
		}
	} else if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	startup, err := h.startupService.Update(c.Request.Context(), userID, c.Param("id"), &req, files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, startup)
}

func (h *StartupHandler) Delete(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.startupService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Startup deleted"})
}

func bindStartupFiles(c *gin.Context) (services.StartupFiles, error) {
	files := services.StartupFiles{}
	var err error
	if files.Logo, err = optionalFormFile(c, "logo"); err != nil {
		return files, err
	}
	if files.PitchDeck, err = optionalFormFile(c, "pitchDeck"); err != nil {
		return files, err
	}
	files.DemoVideo, err = optionalFormFile(c, "demoVideo")
	return files, err
}

// optionalFormFile distinguishes "part absent" from a malformed form.
func optionalFormFile(c *gin.Context, name string) (*multipart.FileHeader, error) {
	header, err := c.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	return header, nil
}
