package api

import (
	"github.com/gin-gonic/gin"

	"profolio/internal/assets"
	"profolio/internal/auth"
	"profolio/internal/portfolio"
	"profolio/internal/render"
	"profolio/internal/share"
)

// RegisterRoutes 注册 API 路由。路径沿用向导前端的既有约定，不加版本前缀。
func RegisterRoutes(
	router *gin.Engine,
	records *portfolio.Store,
	assetStore *assets.Store,
	renderer *render.Renderer,
	shareGenerator *share.Generator,
	authService *auth.Service,
) {
	portfolioHandler := NewPortfolioHandler(records, assetStore, renderer)
	shareHandler := NewShareHandler(shareGenerator)
	authHandler := NewAuthHandler(authService)

	router.POST("/login", authHandler.Login)
	router.POST("/create-portfolio", portfolioHandler.CreatePortfolio)
	router.GET("/get-portfolio", portfolioHandler.GetPortfolio)
	router.GET("/preview-portfolio", portfolioHandler.PreviewPortfolio)
	router.GET("/download-portfolio", portfolioHandler.DownloadPortfolio)
	router.GET("/portfolio", portfolioHandler.LivePortfolio)
	router.GET("/share", shareHandler.Share)
}
