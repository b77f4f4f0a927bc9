package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"collabmate_backend/internal/logger"
	"collabmate_backend/internal/services"
	"collabmate_backend/internal/services/dto"
	"collabmate_backend/pkg/apperrors"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{BaseHandler: base, projectService: projectService}
}

func (h *ProjectHandler) RegisterRoutes(r *gin.RouterGroup) {
	projects := r.Group("/projects")
	{
		projects.POST("", h.CreateProject)
		projects.GET("", h.GetProjects)
		projects.GET("/search", h.SearchProjects)
		projects.GET("/myprojects", h.GetMyProjects)
		projects.GET("/:projectId", h.GetProject)
		projects.PUT("/:projectId", h.UpdateProject)
	}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	form, images, ok := h.bindProjectForm(c)
	if !ok {
		return
	}

	resp, err := h.projectService.Create(c.Request.Context(), h.GetDB(c), userID, form, images)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Project created successfully.", resp)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	form, images, ok := h.bindProjectForm(c)
	if !ok {
		return
	}

	resp, err := h.projectService.Update(c.Request.Context(), h.GetDB(c), userID, c.Param("projectId"), form, images)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Project updated successfully.", resp)
}

func (h *ProjectHandler) GetProjects(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.projectService.GetAll(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Projects fetched successfully.", resp)
}

func (h *ProjectHandler) SearchProjects(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	query := c.Query("q")
	if query == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Search query is required."))
		return
	}

	resp, err := h.projectService.Search(h.GetDB(c), userID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Projects fetched successfully.", resp)
}

func (h *ProjectHandler) GetMyProjects(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.projectService.GetMine(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Projects fetched successfully.", resp)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.projectService.GetByID(h.GetDB(c), userID, c.Param("projectId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, "Project fetched successfully.", resp)
}

// bindProjectForm reads the multipart body: scalar and repeated fields into
// the form DTO, file parts under "images" into upload descriptors.
func (h *ProjectHandler) bindProjectForm(c *gin.Context) (*dto.ProjectForm, []dto.ImageUpload, bool) {
	var form dto.ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind project form", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return nil, nil, false
	}
	if !h.validateObj(c, &form) {
		return nil, nil, false
	}

	var images []dto.ImageUpload
	if mpForm, err := c.MultipartForm(); err == nil && mpForm != nil {
		for _, fh := range mpForm.File["images"] {
			images = append(images, imageUpload(fh))
		}
	}

	return &form, images, true
}

func imageUpload(fh *multipart.FileHeader) dto.ImageUpload {
	return dto.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open:        func() (multipart.File, error) { return fh.Open() },
	}
}
