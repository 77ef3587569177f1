package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jmkcontents/jmkcontents/internal/handler"
	"github.com/jmkcontents/jmkcontents/internal/middleware"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	appHandler *handler.AppHandler,
	conceptHandler *handler.ConceptHandler,
	lectureHandler *handler.LectureHandler,
	adHandler *handler.AffiliateAdHandler,
	contactHandler *handler.ContactHandler,
) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// 공개 카탈로그 (published 앱만 노출)
	apps := api.Group("/apps")
	apps.GET("", appHandler.ListApps)
	apps.GET("/:bundle_id", appHandler.GetApp)
	apps.GET("/:bundle_id/concepts", conceptHandler.ListAppConcepts)
	apps.GET("/:bundle_id/lectures", lectureHandler.ListAppLectures)

	// 광고 송출 및 집계 (앱 클라이언트가 호출)
	ads := api.Group("/ads")
	ads.GET("", adHandler.ListActiveAds)
	ads.POST("/:id/impression", adHandler.TrackImpression)
	ads.POST("/:id/click", adHandler.TrackClick)

	// 공개 문의 폼
	api.POST("/contact", contactHandler.Submit)

	// 관리자 인증 (세션 없이 접근 가능)
	admin := api.Group("/admin")
	admin.POST("/login", authHandler.Login)
	admin.POST("/logout", authHandler.Logout)
	admin.GET("/session", authHandler.Session)

	// 관리자 CMS (세션 필수)
	guarded := admin.Group("", middleware.RequireAdminSession())
	{
		guarded.GET("/apps", appHandler.ListAllApps)
		guarded.GET("/apps/:bundle_id", appHandler.GetApp)
		guarded.POST("/apps", appHandler.CreateApp)
		guarded.PUT("/apps/:bundle_id", appHandler.UpdateApp)
		guarded.DELETE("/apps/:bundle_id", appHandler.DeleteApp)

		guarded.GET("/concepts", conceptHandler.ListAllConcepts)
		guarded.GET("/concepts/:id", conceptHandler.GetConcept)
		guarded.POST("/concepts", conceptHandler.CreateConcept)
		guarded.PUT("/concepts/:id", conceptHandler.UpdateConcept)
		guarded.DELETE("/concepts/:id", conceptHandler.DeleteConcept)

		guarded.GET("/lectures", lectureHandler.ListAllLectures)
		guarded.GET("/lectures/:id", lectureHandler.GetLecture)
		guarded.POST("/lectures", lectureHandler.CreateLecture)
		guarded.PUT("/lectures/:id", lectureHandler.UpdateLecture)
		guarded.DELETE("/lectures/:id", lectureHandler.DeleteLecture)

		guarded.GET("/ads", adHandler.ListAllAds)
		guarded.POST("/ads", adHandler.CreateAd)
		guarded.PUT("/ads/:id", adHandler.UpdateAd)
		guarded.DELETE("/ads/:id", adHandler.DeleteAd)
		guarded.POST("/ads/:id/toggle", adHandler.ToggleAd)

		guarded.GET("/contacts", contactHandler.ListContacts)
		guarded.PUT("/contacts/:id/status", contactHandler.UpdateContactStatus)
	}
}
