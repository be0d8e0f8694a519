package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shamshad-ansari/fitpro-backend/config"
	"github.com/shamshad-ansari/fitpro-backend/controllers"
	"github.com/shamshad-ansari/fitpro-backend/middlewares"
	"github.com/shamshad-ansari/fitpro-backend/services"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

// SetupRouter wires services, controllers and middleware. Everything is
// injected explicitly; no handler reaches for globals.
func SetupRouter(cfg *config.Config, client *mongo.Client, uploader *utils.S3Uploader) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	controllers.SetDevMode(!cfg.IsProduction())

	db := client.Database(cfg.MongoDatabase)

	authSvc := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(db, uploader)
	exerciseSvc := services.NewExerciseService(db)
	nutritionSvc := services.NewNutritionService(db)
	progressSvc := services.NewProgressService(db, cfg.StreakWindowDays)
	workoutSvc := services.NewWorkoutService(db)

	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	exerciseCtrl := controllers.NewExerciseController(exerciseSvc)
	nutritionCtrl := controllers.NewNutritionController(nutritionSvc)
	progressCtrl := controllers.NewProgressController(progressSvc)
	workoutCtrl := controllers.NewWorkoutController(workoutSvc)
	healthCtrl := controllers.NewHealthController(client)

	metrics := middlewares.NewHTTPMetrics(prometheus.DefaultRegisterer)
	authLimiter := middlewares.NewIPRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), metrics.Middleware())

	r.GET("/health", healthCtrl.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/signup", authCtrl.Signup)
		auth.POST("/login", authCtrl.Login)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthRequired(cfg.JWTSecret))
	{
		users := protected.Group("/users")
		{
			users.GET("/me", userCtrl.GetMe)
			users.PUT("/me", userCtrl.UpdateProfile)
			users.PUT("/me/goals", userCtrl.SetGoals)
			users.PUT("/me/targets", userCtrl.SetTargets)
		}

		exercises := protected.Group("/exercises")
		{
			exercises.POST("", exerciseCtrl.Log)
			exercises.GET("", exerciseCtrl.List)
			exercises.GET("/last", exerciseCtrl.Last)
			exercises.GET("/summary", exerciseCtrl.Summary)
		}

		nutrition := protected.Group("/nutrition")
		{
			nutrition.POST("/meals", nutritionCtrl.CreateMeal)
			nutrition.GET("/meals", nutritionCtrl.ListMeals)
			nutrition.PATCH("/meals/:id", nutritionCtrl.UpdateMeal)
			nutrition.DELETE("/meals/:id", nutritionCtrl.DeleteMeal)
			nutrition.GET("/summary", nutritionCtrl.DailySummary)
		}

		progress := protected.Group("/progress")
		{
			progress.POST("", progressCtrl.Upsert)
			progress.GET("", progressCtrl.List)
			progress.GET("/streak", progressCtrl.Streak)
		}

		workouts := protected.Group("/workouts")
		{
			workouts.POST("/sessions", workoutCtrl.CreateSession)
			workouts.GET("/sessions", workoutCtrl.ListSessions)
			workouts.GET("/sessions/:id", workoutCtrl.GetSession)
			workouts.DELETE("/sessions/:id", workoutCtrl.DeleteSession)

			workouts.POST("", workoutCtrl.CreateRoutine)
			workouts.GET("", workoutCtrl.ListRoutines)
			workouts.GET("/:id", workoutCtrl.GetRoutine)
			workouts.PATCH("/:id", workoutCtrl.UpdateRoutine)
			workouts.DELETE("/:id", workoutCtrl.ArchiveRoutine)
		}
	}

	return r
}
