package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Public reads carry optional auth so jobseekers get their
	// hasApplied/applicationStatus annotations.
	public := rg.Group("/jobs")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("", h.Search)
		public.GET("/:id", h.Get)
	}

	authed := rg.Group("/jobs")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", h.Create)
		authed.GET("/my-jobs", h.MyJobs)
		authed.GET("/stats", h.Stats)
		authed.PUT("/:id", h.Update)
		authed.DELETE("/:id", h.Delete)
	}
}

func (h *JobHandler) Search(c *gin.Context) {
	var req dto.SearchJobsRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}
	req.Page, req.PageSize = ParsePagination(c)

	db := h.GetDB(c)

	jobs, total, err := h.jobService.Search(db, req, h.OptionalCaller(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondPage(c, jobs, len(jobs), total, req.Page, req.PageSize)
}

func (h *JobHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	job, err := h.jobService.Get(db, c.Param("id"), h.OptionalCaller(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Create(db, caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.Update(db, caller, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.jobService.Delete(db, caller, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondMessage(c, http.StatusOK, "Job deleted", nil)
}

func (h *JobHandler) MyJobs(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	var req dto.MyJobsRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}
	req.Page, req.PageSize = ParsePagination(c)

	db := h.GetDB(c)

	jobs, total, err := h.jobService.MyJobs(db, caller, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondPage(c, jobs, len(jobs), total, req.Page, req.PageSize)
}

func (h *JobHandler) Stats(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	stats, err := h.jobService.Stats(db, caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, stats)
}
