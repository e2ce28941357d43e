package routes

import (
	"Couple-Backend/internal/api/handlers"
	"Couple-Backend/internal/middleware"
	"Couple-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	CoupleHandler       handlers.CoupleHandler
	AntiWasteHandler    handlers.AntiWasteHandler
	ShoppingHandler     handlers.ShoppingHandler
	MenstruationHandler handlers.MenstruationHandler
	EmotionHandler      handlers.EmotionHandler
	TaskHandler         handlers.TaskHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Couple()
	c.FoodItems()
	c.Shopping()
	c.Menstruation()
	c.Emotions()
	c.Tasks()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Couple() {
	couple := c.App.Group("/api/v1/couples", c.Middleware.AuthMiddleware(c.JWTService))
	couple.Get("/me", c.CoupleHandler.GetMyCouple)
	couple.Post("/join", c.CoupleHandler.JoinCouple)
	couple.Patch("/update", c.CoupleHandler.UpdateCouple)
	couple.Post("/invite-code", c.CoupleHandler.RegenerateInviteCode)
	couple.Post("/invite", c.CoupleHandler.SendInvite)
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))

	foodItems.Post("", c.AntiWasteHandler.AddFoodItem)
	foodItems.Get("", c.AntiWasteHandler.GetFoodItems)
	foodItems.Get("/expiring-soon", c.AntiWasteHandler.GetExpiringSoon)
	foodItems.Get("/stats", c.AntiWasteHandler.GetStats)
	foodItems.Get("/series", c.AntiWasteHandler.GetSeries)
	foodItems.Put("/:id", c.AntiWasteHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.AntiWasteHandler.DeleteFoodItem)
	foodItems.Post("/:id/consume", c.AntiWasteHandler.ConsumeFoodItem)
	foodItems.Post("/:id/discard", c.AntiWasteHandler.DiscardFoodItem)
}

func (c *Config) Shopping() {
	shopping := c.App.Group("/api/v1/shopping", c.Middleware.AuthMiddleware(c.JWTService))
	shopping.Get("/items", c.ShoppingHandler.GetShoppingItems)
	shopping.Post("/items", c.ShoppingHandler.AddShoppingItem)
	shopping.Patch("/items/:id", c.ShoppingHandler.UpdateShoppingItem)
	shopping.Delete("/items/:id", c.ShoppingHandler.DeleteShoppingItem)
	shopping.Delete("/picked", c.ShoppingHandler.ClearPicked)
}

func (c *Config) Menstruation() {
	menstruation := c.App.Group("/api/v1/menstruations", c.Middleware.AuthMiddleware(c.JWTService))

	menstruation.Get("", c.MenstruationHandler.GetPeriods)
	menstruation.Post("/start", c.MenstruationHandler.StartPeriod)
	menstruation.Post("/end", c.MenstruationHandler.EndPeriod)
	menstruation.Patch("/:id", c.MenstruationHandler.UpdatePeriod)
	menstruation.Delete("/:id", c.MenstruationHandler.DeletePeriod)

	menstruation.Post("/:id/symptoms", c.MenstruationHandler.AddSymptom)
	menstruation.Get("/:id/symptoms", c.MenstruationHandler.GetSymptoms)
	menstruation.Delete("/symptoms/:id", c.MenstruationHandler.DeleteSymptom)
	menstruation.Get("/symptoms-summary", c.MenstruationHandler.GetSymptomSummary)

	menstruation.Get("/stats", c.MenstruationHandler.GetCycleStats)
	menstruation.Get("/calendar", c.MenstruationHandler.GetCalendar)
}

func (c *Config) Emotions() {
	emotions := c.App.Group("/api/v1/emotions", c.Middleware.AuthMiddleware(c.JWTService))
	emotions.Post("", c.EmotionHandler.AddEmotion)
	emotions.Get("", c.EmotionHandler.GetEmotions)
	emotions.Get("/stats", c.EmotionHandler.GetEmotionStats)
	emotions.Get("/series", c.EmotionHandler.GetEmotionSeries)
	emotions.Delete("/:id", c.EmotionHandler.DeleteEmotion)
}

func (c *Config) Tasks() {
	tasks := c.App.Group("/api/v1/tasks", c.Middleware.AuthMiddleware(c.JWTService))
	tasks.Get("", c.TaskHandler.GetTasks)
	tasks.Post("", c.TaskHandler.AddTask)
	tasks.Post("/:id/toggle", c.TaskHandler.ToggleTask)
	tasks.Delete("/:id", c.TaskHandler.DeleteTask)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
