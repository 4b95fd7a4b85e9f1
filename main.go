package main

import (
	"log"
	"net/http"
	"time"

	"assessment-service/configs"
	"assessment-service/internal/db"
	"assessment-service/internal/distribution"
	"assessment-service/internal/event"
	"assessment-service/internal/handlers"
	"assessment-service/internal/intent"
	"assessment-service/internal/llm"
	"assessment-service/internal/repository"
	"assessment-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configs.LoadConfig()
	gin.SetMode(configs.AppConfig.GinMode)

	db.InitMongo(configs.AppConfig.MongoURI)
	database := db.Client.Database(configs.AppConfig.MongoDatabase)

	// RabbitMQ event publisher, optional
	var publisher *event.EventPublisher
	if configs.AppConfig.RabbitMQURI != "" && configs.AppConfig.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(configs.AppConfig.RabbitMQURI, configs.AppConfig.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, assessment events will not be published")
	}

	// LLM collaborators, both optional: the service degrades to the
	// deterministic paths without them.
	chatClient := llm.NewClient(configs.AppConfig.OpenAIAPIKey, configs.AppConfig.OpenAIModel)
	if chatClient == nil {
		log.Println("OpenAI not configured, AI plan optimization disabled")
	}
	zeroShot := llm.NewZeroShotClient(configs.AppConfig.HFBaseURL, configs.AppConfig.HFAPIKey, configs.AppConfig.HFZeroShotModel)
	if !zeroShot.Available() {
		log.Println("Zero-shot classifier not configured, intent detection will use rules only")
	}

	// Repositories, services, handlers
	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	planner := distribution.NewAIPlanner(chatClient)
	assessmentService := service.NewAssessmentService(questionRepo, planner)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)

	classifier := intent.NewClassifier(zeroShot, chatClient)
	intentService := service.NewIntentService(classifier)
	intentHandler := handlers.NewIntentHandler(intentService)

	profileRepo := repository.NewProfileRepository(database)
	profileService := service.NewProfileService(profileRepo)
	profileHandler := handlers.NewProfileHandler(profileService)

	resultRepo := repository.NewResultRepository(database)
	resultService := service.NewResultService(resultRepo, questionRepo)
	resultHandler := handlers.NewResultHandler(resultService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	setupRoutes(r, assessmentHandler, intentHandler, questionHandler, profileHandler, resultHandler, publisher)

	log.Printf("Starting %s %s on port %s", configs.AppConfig.ServiceName, configs.AppConfig.ServiceVersion, configs.AppConfig.Port)
	if err := r.Run(":" + configs.AppConfig.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func setupRoutes(
	r *gin.Engine,
	assessmentHandler *handlers.AssessmentHandler,
	intentHandler *handlers.IntentHandler,
	questionHandler *handlers.QuestionHandler,
	profileHandler *handlers.ProfileHandler,
	resultHandler *handlers.ResultHandler,
	publisher *event.EventPublisher,
) {
	// Public routes: intent detection and pool inspection
	publicIntent := r.Group("/public/assessment/intent")
	{
		publicIntent.POST("/detect", func(c *gin.Context) {
			intentHandler.DetectIntent(c)
			if publisher != nil {
				publisher.Publish(event.IntentDetected, gin.H{"timestamp": time.Now()})
			}
		})
	}

	publicQuestion := r.Group("/public/assessment/question")
	{
		publicQuestion.GET("/pool/info", questionHandler.PoolInfo)
	}

	// Protected routes require an authenticated user id
	protected := r.Group("/protected/assessment")
	protected.Use(requireUserID())

	protectedQuestion := protected.Group("/question")
	{
		protectedQuestion.POST("/intent-based", func(c *gin.Context) {
			assessmentHandler.SelectQuestions(c)
			if publisher != nil {
				publisher.Publish(event.QuestionsSelected, gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedQuestion.POST("/bulk", func(c *gin.Context) {
			questionHandler.BulkUpload(c)
			if publisher != nil {
				publisher.Publish(event.QuestionsUploaded, gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	protectedProfile := protected.Group("/profile")
	{
		protectedProfile.PUT("", func(c *gin.Context) {
			profileHandler.SaveProfile(c)
			if publisher != nil {
				publisher.Publish(event.ProfileSaved, gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedProfile.GET("/:id", profileHandler.GetProfile)
	}

	protectedResult := protected.Group("/result")
	{
		protectedResult.POST("", func(c *gin.Context) {
			resultHandler.CreateResult(c)
			if publisher != nil {
				publisher.Publish(event.ResultCreated, gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protectedResult.GET("/:id", resultHandler.GetResult)
		protectedResult.PATCH("/:id/recommendations", resultHandler.AttachRecommendations)
	}

	protectedUser := protected.Group("/user")
	{
		protectedUser.GET("/:id/results", resultHandler.GetResultsByUser)
	}
}

func requireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
