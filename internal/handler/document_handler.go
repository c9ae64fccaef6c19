package handler

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"salesdesk/internal/auth"
	"salesdesk/internal/domain"
	"salesdesk/internal/port"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DocumentHandler streams generated documents stored by the local provider.
// Access is authorized by the signed token embedded in the download link.
type DocumentHandler struct {
	signer  *auth.Signer
	storage port.ObjectStorage
}

func NewDocumentHandler(signer *auth.Signer, storage port.ObjectStorage) *DocumentHandler {
	return &DocumentHandler{signer: signer, storage: storage}
}

// Download handles GET /api/v1/documents/*key?token=...
func (h *DocumentHandler) Download(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	token := c.Query("token")
	if key == "" || token == "" {
		HandleError(c, domain.ErrDocumentToken)
		return
	}

	grantedKey, err := h.signer.Verify(token)
	if err != nil {
		HandleError(c, err)
		return
	}
	// A token only opens the exact object it was minted for.
	if grantedKey != key {
		HandleError(c, domain.ErrDocumentToken)
		return
	}

	rc, err := h.storage.Open(c.Request.Context(), key)
	if err != nil {
		HandleError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", path.Base(key)))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}
