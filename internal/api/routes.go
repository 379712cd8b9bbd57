package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/scan", s.scanHandler)
		api.POST("/check", s.checkHandler)
		api.POST("/filter", s.filterHandler)
		api.POST("/export", s.exportHandler)

		api.POST("/overlay/preview", s.previewHandler)
		api.POST("/overlay/build", s.buildHandler)
		api.POST("/overlay/auto", s.autoBuildHandler)
		api.POST("/overlay/defaults", s.overlayDefaultsHandler)
		api.GET("/templates", s.templatesHandler)
		api.POST("/box-small/auto", s.boxSmallAutoHandler)

		api.GET("/qr", qrHandler)
		api.POST("/qr", qrSaveHandler)

		api.GET("/dialog/start-dir", s.startDirHandler)
		api.POST("/dialog/remember", s.rememberHandler)
	}
}
