package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"salesdesk/internal/domain"
	"salesdesk/internal/handler"
	"salesdesk/mocks"
)

func postJSON(t *testing.T, body any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestEventHandler_Message_Success(t *testing.T) {
	engine := new(mocks.MockChatEngine)
	h := handler.NewEventHandler(engine)

	reply := &domain.Reply{Text: "🏠 Главное меню"}
	engine.On("HandleMessage", mock.Anything, mock.AnythingOfType("*domain.Profile"), "/start").
		Return(reply, nil).Once()

	w, c := postJSON(t, gin.H{"chat_id": 77, "first_name": "Olim", "text": "/start"})
	h.Message(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	engine.AssertExpectations(t)
}

func TestEventHandler_Message_BadRequest(t *testing.T) {
	engine := new(mocks.MockChatEngine)
	h := handler.NewEventHandler(engine)

	// text is required
	w, c := postJSON(t, gin.H{"chat_id": 77})
	h.Message(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	engine.AssertNotCalled(t, "HandleMessage")
}

func TestEventHandler_Callback_Success(t *testing.T) {
	engine := new(mocks.MockChatEngine)
	h := handler.NewEventHandler(engine)

	reply := &domain.Reply{Text: "📅 Выберите месяц:"}
	engine.On("HandleCallback", mock.Anything, mock.AnythingOfType("*domain.Profile"), "v1|sel|year|2024").
		Return(reply, nil).Once()

	w, c := postJSON(t, gin.H{"chat_id": 77, "data": "v1|sel|year|2024"})
	h.Callback(c)

	assert.Equal(t, http.StatusOK, w.Code)
	engine.AssertExpectations(t)
}

func TestEventHandler_Callback_UnknownAction(t *testing.T) {
	engine := new(mocks.MockChatEngine)
	h := handler.NewEventHandler(engine)

	engine.On("HandleCallback", mock.Anything, mock.Anything, "v9|wat").
		Return(nil, domain.ErrUnknownAction).Once()

	w, c := postJSON(t, gin.H{"chat_id": 77, "data": "v9|wat"})
	h.Callback(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "UNKNOWN_ACTION", resp.Error.Code)
}

func TestEventHandler_Callback_StageOrderConflict(t *testing.T) {
	engine := new(mocks.MockChatEngine)
	h := handler.NewEventHandler(engine)

	engine.On("HandleCallback", mock.Anything, mock.Anything, "v1|sel|month|6").
		Return(nil, domain.ErrStageOrder).Once()

	w, c := postJSON(t, gin.H{"chat_id": 77, "data": "v1|sel|month|6"})
	h.Callback(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
