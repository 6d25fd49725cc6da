package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/JohnSmith545/Fuel-and-Flow/controllers"
	"github.com/JohnSmith545/Fuel-and-Flow/middlewares"
	"github.com/JohnSmith545/Fuel-and-Flow/services"
)

// Deps bundles the constructed services the router wires up.
type Deps struct {
	Auth        *services.AuthService
	Users       *services.UserService
	Foods       *services.FoodService
	Meals       *services.MealLogService
	Energy      *services.EnergyService
	StatsCache  *services.StatsCacheService
	Suggestions *services.SuggestionService
	Hydration   *services.HydrationService
	Hub         *services.RealtimeHub
	Poller      *services.EnginePoller
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register(d.Auth))
		auth.POST("/login", controllers.Login(d.Auth))
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile(d.Users))
		api.PUT("/user/profile", controllers.UpdateProfile(d.Users))

		api.GET("/foods", controllers.ListFoods(d.Foods))
		api.POST("/foods", controllers.CreateCustomFood(d.Foods))

		api.POST("/meals", controllers.LogMeal(d.Meals, d.Foods))
		api.GET("/meals", controllers.ListMealLogs(d.Meals))
		api.DELETE("/meals/:id", controllers.DeleteMealLog(d.Meals))

		api.POST("/energy", controllers.LogEnergy(d.Energy, d.Poller))
		api.GET("/energy/eligibility", controllers.CanCheckIn(d.Energy))

		api.GET("/stats/daily", controllers.GetDailyStats(d.StatsCache))
		api.POST("/stats/daily", controllers.SaveDailyStats(d.StatsCache))

		api.GET("/suggestions", controllers.GetSuggestions(d.Suggestions, d.Users))

		api.GET("/hydration", controllers.GetGlasses(d.Hydration))
		api.POST("/hydration/glass", controllers.AddGlass(d.Hydration))
		api.PUT("/hydration", controllers.SetGlasses(d.Hydration))

		api.GET("/ws/engine", controllers.EngineSocket(d.Hub))
	}

	return r
}
