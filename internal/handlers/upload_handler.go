package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"
)

var resumeTypes = map[string]bool{
	"application/pdf": true,
}

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadHandler receives resume and profile picture uploads, stores the
// file, and records the resulting URL on the user's profile.
type UploadHandler struct {
	*BaseHandler
	userService services.UserService
	store       storage.Storage
	maxSize     int64
}

func NewUploadHandler(base *BaseHandler, userService services.UserService, store storage.Storage, cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		BaseHandler: base,
		userService: userService,
		store:       store,
		maxSize:     cfg.Upload.MaxSize,
	}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	uploads := rg.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware())
	{
		uploads.POST("/resume", h.UploadResume)
		uploads.POST("/profile-picture", h.UploadProfilePicture)
	}
}

func (h *UploadHandler) UploadResume(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	url, err := h.saveUpload(c, "resumes", caller.UserID, resumeTypes)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.SetResume(db, caller.UserID, url)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondMessage(c, http.StatusOK, "Resume uploaded", gin.H{
		"url":  url,
		"user": user,
	})
}

func (h *UploadHandler) UploadProfilePicture(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	url, err := h.saveUpload(c, "profile-pictures", caller.UserID, imageTypes)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.SetProfilePicture(db, caller.UserID, url)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondMessage(c, http.StatusOK, "Profile picture uploaded", gin.H{
		"url":  url,
		"user": user,
	})
}

// saveUpload validates the multipart file and writes it under
// <prefix>/<userID>/<random>.<ext>.
func (h *UploadHandler) saveUpload(c *gin.Context, prefix, userID string, allowed map[string]bool) (string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", apperrors.NewBadRequestError("Missing file field in form data")
	}

	if fileHeader.Size > h.maxSize {
		return "", apperrors.ErrFileTooLarge
	}

	contentType, err := detectContentType(fileHeader)
	if err != nil {
		return "", err
	}
	if !allowed[contentType] {
		return "", apperrors.ErrInvalidFileType
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	path := fmt.Sprintf("%s/%s/%s%s", prefix, userID, uuid.NewString(), ext)

	if err := h.store.Save(c.Request.Context(), path, file, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	url, err := h.store.GetURL(c.Request.Context(), path)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	return url, nil
}

// detectContentType sniffs the first bytes of the upload rather than
// trusting the client-supplied header.
func detectContentType(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && n == 0 {
		return "", apperrors.NewBadRequestError("Could not read uploaded file")
	}

	contentType := http.DetectContentType(buf[:n])
	return strings.SplitN(contentType, ";", 2)[0], nil
}
