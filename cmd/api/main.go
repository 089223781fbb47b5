package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/SeungJin051/trelio-sub001/internal/handler"
	"github.com/SeungJin051/trelio-sub001/internal/realtime"
	"github.com/SeungJin051/trelio-sub001/internal/repository"
	"github.com/SeungJin051/trelio-sub001/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // PostgreSQL драйвер
)

// buildDSN собирает строку подключения из переменных окружения.
func buildDSN() string {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	return "host=" + dbHost + " port=" + dbPort + " user=" + dbUser + " password=" + dbPass + " dbname=" + dbName + " sslmode=disable"
}

func main() {
	// .env необязателен: в контейнере параметры приходят из окружения
	godotenv.Load()

	dsn := buildDSN()
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}
	// Выполняем миграции (если есть)
	files, err := filepath.Glob("migrations/*.sql")
	if err == nil {
		for _, file := range files {
			content, readErr := os.ReadFile(file)
			if readErr != nil {
				log.Printf("Миграция %s не прочитана: %v", file, readErr)
				continue
			}
			if _, execErr := db.Exec(string(content)); execErr != nil {
				log.Printf("Миграция %s завершилась ошибкой: %v", file, execErr)
			} else {
				log.Printf("Миграция %s применена.", file)
			}
		}
	}

	// Инициализируем репозитории
	profileRepo := repository.NewProfileRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	planRepo := repository.NewPlanRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)

	// Шина событий и слушатель Postgres NOTIFY
	hub := realtime.NewHub()
	defer hub.Close()
	listener, err := realtime.NewListener(dsn, hub)
	if err != nil {
		log.Fatalf("Не удалось запустить слушатель уведомлений: %v", err)
	}
	defer listener.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go listener.Run(ctx)

	// Периодическая чистка истекших сессий
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n, err := sessionRepo.DeleteExpired(); err != nil {
					log.Printf("Чистка сессий завершилась ошибкой: %v", err)
				} else if n > 0 {
					log.Printf("Удалено истекших сессий: %d", n)
				}
			}
		}
	}()

	// Инициализируем сервисы
	authService := service.NewAuthService(profileRepo, sessionRepo, service.OAuthConfig{
		TokenURL:     os.Getenv("OAUTH_TOKEN_URL"),
		UserInfoURL:  os.Getenv("OAUTH_USERINFO_URL"),
		ClientID:     os.Getenv("OAUTH_CLIENT_ID"),
		ClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("OAUTH_REDIRECT_URL"),
	})
	planService := service.NewPlanService(planRepo, participantRepo, blockRepo, todoRepo, activityRepo, hub)
	blockService := service.NewBlockService(blockRepo, participantRepo, activityRepo)
	todoService := service.NewTodoService(todoRepo, participantRepo, activityRepo)
	inviteService := service.NewInviteService(planRepo, inviteRepo, activityRepo)
	activityService := service.NewActivityService(activityRepo, participantRepo)
	notificationService := service.NewNotificationService(profileRepo, subRepo, participantRepo, planRepo)

	// Создаем Handler и регистрируем маршруты
	h := handler.NewHandler(authService, planService, blockService, todoService,
		inviteService, activityService, notificationService, hub)
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/auth/callback", h.OAuthCallback)
	router.POST("/auth/logout", h.Logout)

	api := router.Group("/api")
	{
		// Проверка приглашения открыта и для невошедших пользователей
		api.GET("/invites/plan/:shareId", h.VerifyInvite)

		authed := api.Group("", h.RequireAuth)
		{
			authed.GET("/me", h.Me)

			authed.POST("/plans", h.CreatePlan)
			authed.GET("/plans", h.ListPlans)
			authed.GET("/plans/:id", h.GetPlan)
			authed.PATCH("/plans/:id", h.UpdatePlan)
			authed.DELETE("/plans/:id", h.DeletePlan)
			authed.GET("/plans/:id/summary", h.PlanSummary)
			authed.GET("/plans/:id/participants", h.ListParticipants)
			authed.PATCH("/plans/:id/participants/:profileId", h.ChangeRole)
			authed.GET("/plans/:id/activities", h.ListActivities)
			authed.GET("/plans/:id/events", h.PlanEvents)

			authed.POST("/blocks", h.CreateBlock)
			authed.GET("/blocks", h.ListBlocks)
			authed.PATCH("/blocks/:id", h.UpdateBlock)
			authed.PUT("/blocks/:id", h.UpdateBlock)
			authed.POST("/blocks/:id/move", h.MoveBlock)
			authed.DELETE("/blocks/:id", h.DeleteBlock)

			authed.POST("/todos", h.CreateTodo)
			authed.GET("/todos", h.ListTodos)
			authed.PATCH("/todos/:id", h.UpdateTodo)
			authed.DELETE("/todos/:id", h.DeleteTodo)

			authed.POST("/invites/plan/:shareId/accept", h.AcceptInvite)
			authed.POST("/notifications/link-code", h.IssueLinkCode)
		}
	}
	// Health-check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Запускаем HTTP-сервер
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
