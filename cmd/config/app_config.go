package config

import (
	"Couple-Backend/internal/api/handlers"
	"Couple-Backend/internal/api/routes"
	"Couple-Backend/internal/middleware"
	"Couple-Backend/internal/utils"
	"Couple-Backend/internal/utils/storage"
	"Couple-Backend/pkg/antiwaste"
	"Couple-Backend/pkg/couple"
	"Couple-Backend/pkg/emotion"
	"Couple-Backend/pkg/jwt"
	"Couple-Backend/pkg/menstruation"
	"Couple-Backend/pkg/shopping"
	"Couple-Backend/pkg/task"
	"Couple-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Paris",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	coupleRepository := couple.NewCoupleRepository(db)
	foodRepository := antiwaste.NewFoodRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)
	menstruationRepository := menstruation.NewMenstruationRepository(db)
	emotionRepository := emotion.NewEmotionRepository(db)
	taskRepository := task.NewTaskRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	coupleService := couple.NewCoupleService(coupleRepository, userRepository)
	foodService := antiwaste.NewFoodService(foodRepository)
	shoppingService := shopping.NewShoppingService(shoppingRepository)
	menstruationService := menstruation.NewMenstruationService(menstruationRepository)
	emotionService := emotion.NewEmotionService(emotionRepository)
	taskService := task.NewTaskService(taskRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	coupleHandler := handlers.NewCoupleHandler(coupleService, validator)
	antiWasteHandler := handlers.NewAntiWasteHandler(foodService, coupleService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, coupleService, validator)
	menstruationHandler := handlers.NewMenstruationHandler(menstruationService, validator)
	emotionHandler := handlers.NewEmotionHandler(emotionService, coupleService, validator)
	taskHandler := handlers.NewTaskHandler(taskService, coupleService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		CoupleHandler:       coupleHandler,
		AntiWasteHandler:    antiWasteHandler,
		ShoppingHandler:     shoppingHandler,
		MenstruationHandler: menstruationHandler,
		EmotionHandler:      emotionHandler,
		TaskHandler:         taskHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
