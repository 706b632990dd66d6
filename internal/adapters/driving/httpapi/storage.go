package httpapi

import (
	"encoding/base64"
	"mime"
	"path/filepath"

	"github.com/gofiber/fiber/v3"

	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driving"
	"github.com/archeteam/workspaced/internal/logger"
)

// StorageHandler handles drive file and folder routes.
type StorageHandler struct {
	storage driving.StorageOps
}

// NewStorageHandler creates a new storage handler.
func NewStorageHandler(storage driving.StorageOps) *StorageHandler {
	return &StorageHandler{storage: storage}
}

// Register sets up storage routes.
func (h *StorageHandler) Register(api fiber.Router) {
	storage := api.Group("/storage")
	storage.Post("/create_item", h.CreateItem)
	storage.Post("/delete_item", h.DeleteItem)
	storage.Post("/create_folder", h.CreateFolder)
	storage.Post("/delete_folder", h.DeleteFolder)
	storage.Post("/share_folder", h.ShareFolder)
}

type createItemRequest struct {
	FileName   string `json:"file_name"`
	Content    string `json:"content"`
	ParentName string `json:"parent_name"`
}

// CreateItem uploads a file, optionally under a named parent folder.
// Content arrives base64-encoded; the MIME type is inferred from the
// file name's extension.
func (h *StorageHandler) CreateItem(c fiber.Ctx) error {
	var req createItemRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.FileName == "" {
		return badRequest(c, "file_name is required")
	}

	data, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		return badRequest(c, "content is not valid base64")
	}

	logger.Info("create file request: name=%q parent=%q", req.FileName, req.ParentName)

	file := domain.FileUpload{
		Name:     req.FileName,
		Content:  data,
		MIMEType: mime.TypeByExtension(filepath.Ext(req.FileName)),
	}
	if err := h.storage.CreateFile(c.Context(), file, req.ParentName); err != nil {
		logger.Error("create file: %v", err)
		return fail(c, err)
	}
	return ok(c)
}

type itemRequest struct {
	FileName   string `json:"file_name"`
	ParentName string `json:"parent_name"`
}

// DeleteItem removes the first file matching the name, optionally
// scoped to a named parent folder.
func (h *StorageHandler) DeleteItem(c fiber.Ctx) error {
	var req itemRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.FileName == "" {
		return badRequest(c, "file_name is required")
	}

	logger.Info("delete file request: name=%q parent=%q", req.FileName, req.ParentName)

	if err := h.storage.DeleteFile(c.Context(), req.FileName, req.ParentName); err != nil {
		logger.Error("delete file: %v", err)
		return fail(c, err)
	}
	return ok(c)
}

type folderRequest struct {
	FolderName string `json:"folder_name"`
	ParentName string `json:"parent_name"`
}

// CreateFolder creates a folder, optionally under a named parent.
func (h *StorageHandler) CreateFolder(c fiber.Ctx) error {
	var req folderRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.FolderName == "" {
		return badRequest(c, "folder_name is required")
	}

	logger.Info("create folder request: name=%q parent=%q", req.FolderName, req.ParentName)

	if err := h.storage.CreateFolder(c.Context(), req.FolderName, req.ParentName); err != nil {
		logger.Error("create folder: %v", err)
		return fail(c, err)
	}
	return ok(c)
}

// DeleteFolder removes the first folder matching the name.
func (h *StorageHandler) DeleteFolder(c fiber.Ctx) error {
	var req folderRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.FolderName == "" {
		return badRequest(c, "folder_name is required")
	}

	logger.Info("delete folder request: name=%q parent=%q", req.FolderName, req.ParentName)

	if err := h.storage.DeleteFolder(c.Context(), req.FolderName, req.ParentName); err != nil {
		logger.Error("delete folder: %v", err)
		return fail(c, err)
	}
	return ok(c)
}

type shareFolderRequest struct {
	FolderName string `json:"folder_name"`
	ParentName string `json:"parent_name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Notify     *bool  `json:"notify"`
}

// ShareFolder grants a user access to the named folder. Role defaults
// to reader and the grantee is notified unless notify is false.
func (h *StorageHandler) ShareFolder(c fiber.Ctx) error {
	var req shareFolderRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.FolderName == "" {
		return badRequest(c, "folder_name is required")
	}
	if req.Email == "" {
		return badRequest(c, "email is required")
	}

	notify := true
	if req.Notify != nil {
		notify = *req.Notify
	}

	logger.Info("share folder request: name=%q email=%s role=%q", req.FolderName, req.Email, req.Role)

	grant := domain.PermissionGrant{Email: req.Email, Role: req.Role, Notify: notify}
	if err := h.storage.ShareFolder(c.Context(), req.FolderName, req.ParentName, grant); err != nil {
		logger.Error("share folder: %v", err)
		return fail(c, err)
	}
	return ok(c)
}
