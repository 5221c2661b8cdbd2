package handler

import (
	"time"

	"hushhnotify/internal/domain/entity"
	"hushhnotify/pkg/logger"
	"hushhnotify/pkg/response"

	"github.com/labstack/echo/v4"
)

const pingMessage = "Hello from Firebase Functions!"

type PingResponse struct {
	Message       string      `json:"message"`
	Timestamp     string      `json:"timestamp"`
	Data          interface{} `json:"data"`
	Authenticated bool        `json:"authenticated"`
}

type PingHandler struct {
	now func() time.Time
}

func NewPingHandler() *PingHandler {
	return &PingHandler{now: time.Now}
}

// Ping echoes the callable data back; clients use it as a connectivity check.
func (h *PingHandler) Ping(c echo.Context) error {
	var data interface{}
	if err := bindCallable(c, &data); err != nil {
		return response.Error(c, err)
	}

	uid := callerUID(c)
	logger.Info("Ping called, authenticated=%t", uid != "")

	return response.Success(c, PingResponse{
		Message:       pingMessage,
		Timestamp:     entity.FormatTimestamp(h.now()),
		Data:          data,
		Authenticated: uid != "",
	})
}
