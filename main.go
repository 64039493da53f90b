package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/venu-chandaka/online-learning-app-insightquest-internship/config"
	mentorController "github.com/venu-chandaka/online-learning-app-insightquest-internship/controllers/mentor"
	studentController "github.com/venu-chandaka/online-learning-app-insightquest-internship/controllers/student"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/database"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/routers/authRoutes"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/routers/courseRoutes"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/routers/mentorRoutes"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/routers/studentRoutes"
	"github.com/venu-chandaka/online-learning-app-insightquest-internship/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	mentorRoutes.SetupMentorRoutes(app, mentorController.NewMentorController(database.Database.Db))
	studentRoutes.SetupStudentRoutes(app, studentController.NewStudentController(database.Database.Db))

	utils.InitializeOTPScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
