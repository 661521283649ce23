package api

import (
	"net/http"

	"alcyxob/oly-planner/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	profileService service.ProfileService,
	blockService service.BlockService,
	workoutService service.WorkoutService,
) {
	profileHandler := NewProfileHandler(profileService)
	blockHandler := NewBlockHandler(blockService)
	workoutHandler := NewWorkoutHandler(workoutService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		profiles := apiV1.Group("/profiles")
		{
			profiles.POST("", profileHandler.CreateProfile)
			profiles.GET("", profileHandler.ListProfiles)
			profiles.GET("/:name", profileHandler.GetProfile)
			profiles.PUT("/:name", profileHandler.UpdateProfile)
			profiles.DELETE("/:name", profileHandler.DeleteProfile)
			profiles.POST("/:name/readiness", profileHandler.LogReadiness)

			profiles.POST("/:name/blocks", blockHandler.GenerateBlock)
			profiles.POST("/:name/blocks/regenerate", blockHandler.RegenerateBlock)
			profiles.GET("/:name/blocks/current", blockHandler.GetCurrentBlock)
			profiles.GET("/:name/blocks", blockHandler.GetBlockHistory)
			profiles.POST("/:name/blocks/import", blockHandler.ImportBlock)

			// Day-level workout routes address the profile's current block.
			days := profiles.Group("/:name/weeks/:week/days/:day")
			{
				days.GET("/scheme", workoutHandler.GetDayScheme)
				days.PUT("/sets/:ex/:set", workoutHandler.LogSet)
				days.PUT("/overrides/:ex", workoutHandler.SetOverrides)
				days.POST("/complete", workoutHandler.CompleteDay)
			}
		}

		blocks := apiV1.Group("/blocks")
		{
			blocks.GET("/:id", blockHandler.GetBlockByID)
			blocks.GET("/:id/export", blockHandler.ExportBlock)
			blocks.POST("/:id/backup-url", blockHandler.BackupURL)
			blocks.GET("/:id/weeks/:week/days/:day/exercises/:ex/options", blockHandler.GetSwapOptions)
			blocks.PUT("/:id/weeks/:week/days/:day/exercises/:ex", blockHandler.SwapExercise)
		}
	}
}
