package app

import (
	"database/sql"
	"fmt"
	"log"

	"estateoffice/internal/config"
	"estateoffice/internal/handlers"
	"estateoffice/internal/pdf"
	"estateoffice/internal/repositories"
	"estateoffice/internal/routes"
	"estateoffice/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "estateoffice/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	realEstateRepo := repositories.NewRealEstateRepository(db)
	ownershipTypeRepo := repositories.NewOwnershipTypeRepository(db)
	restrictionTypeRepo := repositories.NewRestrictionTypeRepository(db)
	ownershipRepo := repositories.NewOwnershipRepository(db)
	restrictionRepo := repositories.NewRestrictionRepository(db)
	dealRepo := repositories.NewDealRepository(db)
	dashboardRepo := repositories.NewDashboardRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)

	// deal alerts are optional: no token, no notifier
	var notifier services.DealNotifier
	if cfg.Telegram.BotToken != "" {
		notifier, err = services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("telegram notifier disabled: %v", err)
			notifier = nil
		}
	}

	userService := services.NewUserService(userRepo, authService)
	clientService := services.NewClientService(clientRepo, emailService)
	realEstateService := services.NewRealEstateService(realEstateRepo)
	ownershipTypeService := services.NewOwnershipTypeService(ownershipTypeRepo)
	restrictionTypeService := services.NewRestrictionTypeService(restrictionTypeRepo)
	ownershipService := services.NewOwnershipService(ownershipRepo)
	restrictionService := services.NewRestrictionService(restrictionRepo)
	dealService := services.NewDealService(dealRepo, notifier)
	dashboardService := services.NewDashboardService(dashboardRepo)

	pdfGen := pdf.NewDocumentGenerator(cfg.Files.RootDir)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	userHandler := handlers.NewUserHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	realEstateHandler := handlers.NewRealEstateHandler(realEstateService)
	ownershipTypeHandler := handlers.NewOwnershipTypeHandler(ownershipTypeService)
	restrictionTypeHandler := handlers.NewRestrictionTypeHandler(restrictionTypeService)
	ownershipHandler := handlers.NewOwnershipHandler(ownershipService)
	restrictionHandler := handlers.NewRestrictionHandler(restrictionService)
	dealHandler := handlers.NewDealHandler(dealService, pdfGen)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authHandler,
		userHandler,
		clientHandler,
		realEstateHandler,
		ownershipTypeHandler,
		restrictionTypeHandler,
		ownershipHandler,
		restrictionHandler,
		dealHandler,
		dashboardHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server failed: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
