package routes

import (
	"os"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	db := config.DB
	loc := config.Timezone()

	authService := services.NewAuthService(db)
	profileService := services.NewProfileService(db)
	logService := services.NewLogService(db, loc)
	summaryService := services.NewSummaryService(services.NewGormSummaryStore(db), loc)
	foodService := services.NewFoodService(db)
	activityService := services.NewActivityService(db)
	articleService := services.NewArticleService(db)
	eventService := services.NewEventService(db)
	contentService := services.NewContentService(db)
	predictionService := services.NewPredictionService(foodService, os.Getenv("PREDICTION_ENDPOINT"))
	adminSummaryService := services.NewAdminSummaryService(db, loc)

	authCtl := controllers.NewAuthController(authService)
	profileCtl := controllers.NewProfileController(profileService)
	logCtl := controllers.NewLogController(logService)
	summaryCtl := controllers.NewSummaryController(summaryService)
	foodCtl := controllers.NewFoodController(foodService)
	activityCtl := controllers.NewActivityController(activityService)
	articleCtl := controllers.NewArticleController(articleService)
	eventCtl := controllers.NewEventController(eventService)
	contentCtl := controllers.NewContentController(contentService)
	predictionCtl := controllers.NewPredictionController(predictionService)
	adminSummaryCtl := controllers.NewAdminSummaryController(adminSummaryService)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/verify-otp", authCtl.VerifyOTP)
		auth.POST("/resend-otp", authCtl.ResendOTP)
		auth.POST("/login", authCtl.Login)
		auth.POST("/refresh", authCtl.Refresh)
		auth.POST("/logout", authCtl.Logout)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
		auth.POST("/first-admin", authCtl.CreateFirstAdmin)
	}

	// Public catalogs
	r.GET("/foods", foodCtl.ListFoods)
	r.GET("/foods/:id", foodCtl.GetFood)
	r.GET("/food-categories", foodCtl.ListCategories)
	r.GET("/activities", activityCtl.ListActivities)
	r.GET("/activities/:id", activityCtl.GetActivity)
	r.GET("/activity-categories", activityCtl.ListCategories)
	r.GET("/articles", articleCtl.ListArticles)
	r.GET("/articles/:id", articleCtl.GetArticle)
	r.GET("/article-categories", articleCtl.ListCategories)
	r.GET("/events", eventCtl.ListEvents)
	r.GET("/events/:id", eventCtl.GetEvent)
	r.GET("/event-categories", eventCtl.ListCategories)
	r.GET("/tips", contentCtl.ListTips)
	r.GET("/faqs", contentCtl.ListFaqs)
	r.GET("/carousels", contentCtl.ListCarousels)
	r.GET("/informations", contentCtl.ListInformations)

	// Protected user routes
	user := r.Group("/users/me")
	user.Use(middlewares.AuthMiddleware())
	{
		user.POST("/profile/setup", profileCtl.SetupProfile)
		user.GET("/profile/setup", profileCtl.GetProfileSetup)

		user.POST("/logs/foods", logCtl.LogFoods)
		user.POST("/logs/activities", logCtl.LogActivities)
		user.POST("/logs/steps", logCtl.LogSteps)
		user.POST("/logs/water", logCtl.LogWater)

		user.GET("/summary/today", summaryCtl.Today)
		user.GET("/summary/weekly", summaryCtl.Weekly)
		user.GET("/summary/monthly", summaryCtl.Monthly)
		user.GET("/summary", summaryCtl.All)
		user.GET("/history", summaryCtl.History)

		user.POST("/predict", predictionCtl.Predict)
	}

	// Admin mutations
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		admin.POST("/admins", authCtl.CreateAdmin)

		admin.POST("/foods", foodCtl.CreateFood)
		admin.PATCH("/foods/:id", foodCtl.UpdateFood)
		admin.DELETE("/foods/:id", foodCtl.DeleteFood)
		admin.POST("/food-categories", foodCtl.CreateCategory)
		admin.PUT("/food-categories/:id", foodCtl.UpdateCategory)
		admin.DELETE("/food-categories/:id", foodCtl.DeleteCategory)

		admin.POST("/activities", activityCtl.CreateActivity)
		admin.PATCH("/activities/:id", activityCtl.UpdateActivity)
		admin.DELETE("/activities/:id", activityCtl.DeleteActivity)
		admin.POST("/activity-categories", activityCtl.CreateCategory)
		admin.PUT("/activity-categories/:id", activityCtl.UpdateCategory)
		admin.DELETE("/activity-categories/:id", activityCtl.DeleteCategory)

		admin.POST("/articles", articleCtl.CreateArticle)
		admin.PATCH("/articles/:id", articleCtl.UpdateArticle)
		admin.DELETE("/articles/:id", articleCtl.DeleteArticle)
		admin.POST("/article-categories", articleCtl.CreateCategory)
		admin.DELETE("/article-categories/:id", articleCtl.DeleteCategory)

		admin.POST("/events", eventCtl.CreateEvent)
		admin.PATCH("/events/:id", eventCtl.UpdateEvent)
		admin.DELETE("/events/:id", eventCtl.DeleteEvent)
		admin.POST("/event-categories", eventCtl.CreateCategory)
		admin.DELETE("/event-categories/:id", eventCtl.DeleteCategory)

		admin.POST("/tips", contentCtl.CreateTip)
		admin.PUT("/tips/:id", contentCtl.UpdateTip)
		admin.DELETE("/tips/:id", contentCtl.DeleteTip)
		admin.POST("/faqs", contentCtl.CreateFaq)
		admin.PUT("/faqs/:id", contentCtl.UpdateFaq)
		admin.DELETE("/faqs/:id", contentCtl.DeleteFaq)
		admin.POST("/carousels", contentCtl.CreateCarousel)
		admin.DELETE("/carousels/:id", contentCtl.DeleteCarousel)
		admin.POST("/informations", contentCtl.CreateInformation)
		admin.PUT("/informations/:id", contentCtl.UpdateInformation)
		admin.DELETE("/informations/:id", contentCtl.DeleteInformation)

		admin.GET("/summary/users", adminSummaryCtl.UserStats)
		admin.GET("/summary/nutrition", adminSummaryCtl.NutritionStats)
	}

	return r
}
