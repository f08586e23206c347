package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		appService:  appService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.POST("", h.Apply)
		apps.GET("/my-applications", h.MyApplications)
		apps.GET("/stats", h.Stats)
		apps.GET("/job/:jobId", h.ListByJob)
		apps.GET("/:id", h.Get)
		apps.PUT("/:id/status", h.UpdateStatus)
		apps.DELETE("/:id", h.Delete)
	}

	admin := rg.Group("/applications")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListAll)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	app, err := h.appService.Apply(db, caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusCreated, app)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	app, err := h.appService.Get(db, caller, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, app)
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	var req dto.MyApplicationsRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}
	req.Page, req.PageSize = ParsePagination(c)

	db := h.GetDB(c)

	apps, total, err := h.appService.MyApplications(db, caller, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondPage(c, apps, len(apps), total, req.Page, req.PageSize)
}

func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	var req dto.MyApplicationsRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}
	req.Page, req.PageSize = ParsePagination(c)

	db := h.GetDB(c)

	apps, total, err := h.appService.ListByJob(db, caller, c.Param("jobId"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondPage(c, apps, len(apps), total, req.Page, req.PageSize)
}

func (h *ApplicationHandler) ListAll(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	var req dto.ListApplicationsRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}
	req.Page, req.PageSize = ParsePagination(c)

	db := h.GetDB(c)

	apps, total, err := h.appService.ListAll(db, caller, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondPage(c, apps, len(apps), total, req.Page, req.PageSize)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	app, err := h.appService.UpdateStatus(db, caller, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, app)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.appService.Delete(db, caller, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondMessage(c, http.StatusOK, "Application withdrawn", nil)
}

func (h *ApplicationHandler) Stats(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	stats, err := h.appService.EmployerStats(db, caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, stats)
}
