package service

import (
	"github.com/gin-gonic/gin"

	"github.com/moodnote-ai/moodnote/app/core"
	"github.com/moodnote-ai/moodnote/app/response"
	"github.com/moodnote-ai/moodnote/cmd/service/handler"
	"github.com/moodnote-ai/moodnote/cmd/service/middleware"
	"github.com/moodnote-ai/moodnote/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func GetIPLimitBuilder(appCore *core.Core) middleware.LimiterFunc {
	return func(key string, opts ...core.LimitOption) gin.HandlerFunc {
		return middleware.UseLimit(appCore, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		}, opts...)
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)

	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors)

	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.GET("/health", func(c *gin.Context) {
			response.APISuccess(c, gin.H{"status": "ok"})
		})

		entry := apiV1.Group("/entry")
		{
			entry.POST("", s.CreateEntry)
			entry.POST("/checkin", s.QuickCheckin)
			entry.DELETE("/:id", s.DeleteEntry)
		}

		entries := apiV1.Group("/entries")
		{
			entries.GET("", s.ListEntries)
			entries.GET("/range", s.ListEntriesByRange)
			entries.DELETE("", s.ClearEntries)
		}

		trend := apiV1.Group("/trend")
		{
			trend.GET("/daily", s.DailyTrend)
			trend.GET("/mood", s.MoodCurve)
		}

		apiV1.POST("/advice", ipLimit("advice", core.WithLimit(10)), s.GetAdvice)

		setting := apiV1.Group("/setting")
		{
			setting.GET("/:key", s.GetSetting)
			setting.PUT("/:key", s.SetSetting)
		}

		apiV1.GET("/export", s.Export)
	}
}
