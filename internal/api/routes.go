package api

import (
	"net/http"

	"peakform/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	diaryService service.DiaryService,
	insightsService service.InsightsService,
) {
	authHandler := NewAuthHandler(authService)
	diaryHandler := NewDiaryHandler(diaryService)
	insightsHandler := NewInsightsHandler(insightsService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/request-link", authHandler.RequestLink)
			authGroup.POST("/verify", authHandler.Verify)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID.Hex()})
		})

		// --- Diary ---
		diaryGroup := protected.Group("/diary")
		{
			// GET /api/v1/diary - full snapshot (entries + settings)
			diaryGroup.GET("", diaryHandler.GetSnapshot)

			diaryGroup.GET("/entries/:date", diaryHandler.GetEntry)
			diaryGroup.PUT("/entries/:date", diaryHandler.PutEntry)
			diaryGroup.PATCH("/entries/:date", diaryHandler.PatchEntryField)
			diaryGroup.POST("/entries/:date/clear", diaryHandler.ClearDay)

			diaryGroup.GET("/settings", diaryHandler.GetSettings)
			diaryGroup.PUT("/settings", diaryHandler.PutSettings)

			diaryGroup.POST("/import", diaryHandler.ImportText)
			diaryGroup.GET("/template/:date", diaryHandler.GetTemplate)
		}

		// --- Insights ---
		// GET /api/v1/insights/dashboard - every derived series in one payload
		protected.GET("/insights/dashboard", insightsHandler.GetDashboard)
	}
}
