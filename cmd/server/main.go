package main

import (
	"log"

	"quiz-bot-backend/internal/config"
	"quiz-bot-backend/internal/database"
	"quiz-bot-backend/internal/handlers"
	"quiz-bot-backend/internal/services"
	"quiz-bot-backend/internal/telegram"
	"quiz-bot-backend/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	if cfg.BotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	db := database.Connect(cfg)
	database.AutoMigrate(db)
	database.Seed(db, cfg.SeedFile)

	hub := ws.NewHub()

	storeService := services.NewStoreService(db)
	questionService := services.NewQuestionService(db)

	bot, err := telegram.NewBot(cfg.BotToken, storeService, hub, cfg.QuestionsPerQuiz)
	if err != nil {
		log.Fatalf("failed to start bot: %v", err)
	}
	go bot.Start()
	defer bot.Stop()

	questionHandler := handlers.NewQuestionHandler(questionService)
	answersHandler := handlers.NewAnswersHandler(storeService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, handlers.MessageResponse{Message: "ok"})
	})
	r.GET("/ws/events", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		questions := api.Group("/questions")
		{
			questions.GET("", questionHandler.ListQuestions)
			questions.POST("", questionHandler.CreateQuestion)
			questions.PUT("/:id", questionHandler.UpdateQuestion)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
		}

		api.GET("/users/:telegram_id/answers", answersHandler.ListUserAnswers)
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
