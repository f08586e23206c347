package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.PUT("/profile", h.UpdateProfile)
		users.DELETE("/:id", h.DeleteUser)
	}

	admin := rg.Group("/users")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListUsers)
		admin.GET("/:id", h.GetUser)
		admin.PUT("/:id/active", h.SetActive)
	}
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.UpdateProfile(db, caller.UserID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, user)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	var req dto.ListUsersRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}
	req.Page, req.PageSize = ParsePagination(c)

	db := h.GetDB(c)

	users, total, err := h.userService.ListUsers(db, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondPage(c, users, len(users), total, req.Page, req.PageSize)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	db := h.GetDB(c)

	user, err := h.userService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondData(c, http.StatusOK, user)
}

func (h *UserHandler) SetActive(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	var req dto.SetActiveRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.SetActive(db, caller, c.Param("id"), *req.IsActive); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondMessage(c, http.StatusOK, "User updated", nil)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.DeleteUser(db, caller, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondMessage(c, http.StatusOK, "User deleted", nil)
}
