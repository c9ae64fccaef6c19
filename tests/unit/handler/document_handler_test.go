package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/auth"
	"salesdesk/internal/handler"
	"salesdesk/internal/port"
	"salesdesk/internal/storage/local"
)

func newDocumentFixture(t *testing.T) (*handler.DocumentHandler, *auth.Signer, port.ObjectStorage) {
	t.Helper()
	signer := auth.NewSigner("test-secret", time.Hour)
	storage, err := local.NewLocalStorage(t.TempDir(), "http://localhost:8080", signer)
	require.NoError(t, err)
	return handler.NewDocumentHandler(signer, storage), signer, storage
}

func getDocument(key, token string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/documents/"+key+"?token="+token, http.NoBody)
	c.Params = gin.Params{{Key: "key", Value: "/" + key}}
	return w, c
}

func TestDocumentHandler_Download_Success(t *testing.T) {
	h, signer, storage := newDocumentFixture(t)

	key := "invoices/abc/nakladnaya_42.xlsx"
	require.NoError(t, storage.Save(context.Background(), key, "", strings.NewReader("workbook-bytes")))
	token, err := signer.Sign(key)
	require.NoError(t, err)

	w, c := getDocument(key, token)
	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "workbook-bytes", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "nakladnaya_42.xlsx")
}

func TestDocumentHandler_Download_TokenForOtherKey(t *testing.T) {
	h, signer, storage := newDocumentFixture(t)

	require.NoError(t, storage.Save(context.Background(), "acts/a.xlsx", "", strings.NewReader("a")))
	token, err := signer.Sign("acts/b.xlsx")
	require.NoError(t, err)

	w, c := getDocument("acts/a.xlsx", token)
	h.Download(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDocumentHandler_Download_BadToken(t *testing.T) {
	h, _, _ := newDocumentFixture(t)

	w, c := getDocument("acts/a.xlsx", "garbage")
	h.Download(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDocumentHandler_Download_MissingObject(t *testing.T) {
	h, signer, _ := newDocumentFixture(t)

	token, err := signer.Sign("acts/missing.xlsx")
	require.NoError(t, err)

	w, c := getDocument("acts/missing.xlsx", token)
	h.Download(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
