package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MTahaFarrukh/PortBuilder/adapters/media_storage"
	"github.com/MTahaFarrukh/PortBuilder/internal/application/store"
	"github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"
	"github.com/MTahaFarrukh/PortBuilder/pkg/apperror"
	"github.com/MTahaFarrukh/PortBuilder/pkg/logger"
)

const avatarFolder = "portbuilder/avatars"

// AvatarHandler uploads a profile image and points the document's avatar
// field at the resulting URL.
type AvatarHandler struct {
	stores  *store.Manager
	storage media_storage.AvatarStorage
	logger  logger.Logger
}

func NewAvatarHandler(stores *store.Manager, storage media_storage.AvatarStorage, log logger.Logger) *AvatarHandler {
	return &AvatarHandler{stores: stores, storage: storage, logger: log}
}

func (h *AvatarHandler) UploadAvatar(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("userID not found in context", nil))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("missing multipart 'file' field", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot open uploaded file", err))
		return
	}
	defer file.Close()

	url, err := h.storage.Upload(c.Request.Context(), file, avatarFolder, userID)
	if err != nil {
		c.Error(apperror.NewInternal("avatar upload failed", err))
		return
	}

	s := h.stores.For(c.Request.Context(), userID)
	s.UpdateProfile(c.Request.Context(), portfolio.ProfilePatch{Avatar: &url})

	c.JSON(http.StatusOK, toProfileResponse(s))
}
