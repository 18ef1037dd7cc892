package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"profolio/internal/api/middleware"
	"profolio/internal/share"
)

// ShareHandler 返回在线页面的分享链接与二维码。
type ShareHandler struct {
	generator *share.Generator
}

// NewShareHandler 构造 ShareHandler。
func NewShareHandler(generator *share.Generator) *ShareHandler {
	return &ShareHandler{generator: generator}
}

// Share 每次调用都重新计算链接与二维码。
func (h *ShareHandler) Share(c *gin.Context) {
	url, qrCode, err := h.generator.Generate()
	if err != nil {
		middleware.LoggerFromContext(c).Error("generate share qr", slog.String("error", err.Error()))
		Internal(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     url,
		"qrCode":  qrCode,
	})
}
