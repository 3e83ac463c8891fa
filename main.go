package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/metacode0602/open-mcp-sub000/collector"
	"github.com/metacode0602/open-mcp-sub000/config"
	"github.com/metacode0602/open-mcp-sub000/handlers"
	"github.com/metacode0602/open-mcp-sub000/middleware"
	"github.com/metacode0602/open-mcp-sub000/repositories"
	"github.com/metacode0602/open-mcp-sub000/services"
)

func main() {
	log := logrus.New()
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}

	db, err := config.InitDB()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	appRepo := repositories.NewAppRepository(db)
	repoRepo := repositories.NewRepoRepository(db)
	rankingRepo := repositories.NewRankingRepository(db)
	snapshotRepo := repositories.NewSnapshotRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	adRepo := repositories.NewAdRepository(db)
	claimRepo := repositories.NewClaimRepository(db)
	suggestionRepo := repositories.NewSuggestionRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	rssRepo := repositories.NewRssRepository(db)
	recommendationRepo := repositories.NewRecommendationRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	appService := services.NewAppService(db, appRepo, tagRepo)
	repoService := services.NewRepoService(repoRepo, appRepo)
	rankingService := services.NewRankingService(db, rankingRepo, appRepo, log)
	trendService := services.NewTrendService(snapshotRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	tagService := services.NewTagService(tagRepo)
	adService := services.NewAdService(adRepo)
	claimService := services.NewClaimService(claimRepo, appRepo)
	suggestionService := services.NewSuggestionService(suggestionRepo, appRepo)
	paymentService := services.NewPaymentService(paymentRepo)
	rssService := services.NewRssService(rssRepo)
	recommendationService := services.NewRecommendationService(recommendationRepo, appRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	appHandler := handlers.NewAppHandler(appService)
	repoHandler := handlers.NewRepoHandler(repoService)
	rankingHandler := handlers.NewRankingHandler(rankingService, trendService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	tagHandler := handlers.NewTagHandler(tagService)
	adHandler := handlers.NewAdHandler(adService)
	claimHandler := handlers.NewClaimHandler(claimService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	rssHandler := handlers.NewRssHandler(rssService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)

	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public routes (approved/online listings only)
		public := v1.Group("/public")
		{
			public.GET("/apps", appHandler.SearchPublicApps)
			public.GET("/apps/:id", appHandler.GetPublicApp)
			public.GET("/rankings", rankingHandler.SearchRankings)
			public.GET("/rankings/:id", rankingHandler.GetRanking)
			public.GET("/rankings/:id/records", rankingHandler.GetRankingRecords)
			public.GET("/repos/:id/trends", rankingHandler.GetProjectTrends)
			public.GET("/categories", categoryHandler.GetPublicCategories)
			public.GET("/tags", tagHandler.GetPublicTags)
			public.GET("/recommendations", recommendationHandler.GetRecommendations)
		}

		// Authenticated user routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.POST("/apps", appHandler.SubmitApp)
			protected.POST("/claims", claimHandler.CreateClaim)
			protected.GET("/claims", claimHandler.GetMyClaims)
			protected.POST("/suggestions", suggestionHandler.CreateSuggestion)
			protected.GET("/suggestions", suggestionHandler.GetMySuggestions)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
		{
			apps := admin.Group("/apps")
			{
				apps.POST("", appHandler.CreateApp)
				apps.GET("", appHandler.SearchApps)
				apps.GET("/:id", appHandler.GetApp)
				apps.PUT("/:id", appHandler.UpdateApp)
				apps.DELETE("/:id", appHandler.DeleteApp)
			}

			repos := admin.Group("/repos")
			{
				repos.POST("", repoHandler.CreateRepo)
				repos.GET("", repoHandler.GetRepos)
				repos.GET("/:id", repoHandler.GetRepo)
				repos.DELETE("/:id", repoHandler.DeleteRepo)
			}

			rankings := admin.Group("/rankings")
			{
				rankings.POST("", rankingHandler.CreateRanking)
				rankings.POST("/github", rankingHandler.CreateGithubRank)
				rankings.GET("", rankingHandler.SearchRankings)
				rankings.GET("/:id", rankingHandler.GetRanking)
				rankings.GET("/:id/records", rankingHandler.GetRankingRecords)
				rankings.DELETE("/:id", rankingHandler.DeleteRanking)
			}

			categories := admin.Group("/categories")
			{
				categories.POST("", categoryHandler.CreateCategory)
				categories.GET("", categoryHandler.SearchCategories)
				categories.GET("/:id", categoryHandler.GetCategory)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			tags := admin.Group("/tags")
			{
				tags.POST("", tagHandler.CreateTag)
				tags.GET("", tagHandler.SearchTags)
				tags.GET("/:id", tagHandler.GetTag)
				tags.PUT("/:id", tagHandler.UpdateTag)
				tags.DELETE("/:id", tagHandler.DeleteTag)
			}

			ads := admin.Group("/ads")
			{
				ads.POST("", adHandler.CreateAd)
				ads.GET("", adHandler.SearchAds)
				ads.GET("/:id", adHandler.GetAd)
				ads.PUT("/:id", adHandler.UpdateAd)
				ads.DELETE("/:id", adHandler.DeleteAd)
			}

			claims := admin.Group("/claims")
			{
				claims.GET("", claimHandler.SearchClaims)
				claims.GET("/:id", claimHandler.GetClaim)
				claims.PUT("/:id/review", claimHandler.ReviewClaim)
				claims.DELETE("/:id", claimHandler.DeleteClaim)
			}

			suggestions := admin.Group("/suggestions")
			{
				suggestions.GET("", suggestionHandler.SearchSuggestions)
				suggestions.PUT("/:id/review", suggestionHandler.ReviewSuggestion)
				suggestions.DELETE("/:id", suggestionHandler.DeleteSuggestion)
			}

			payments := admin.Group("/payments")
			{
				payments.POST("", paymentHandler.CreatePayment)
				payments.GET("", paymentHandler.SearchPayments)
				payments.GET("/:id", paymentHandler.GetPayment)
				payments.PUT("/:id/paid", paymentHandler.MarkPaid)
				payments.POST("/:id/invoice", paymentHandler.IssueInvoice)
				payments.DELETE("/:id", paymentHandler.DeletePayment)
			}

			admin.GET("/invoices/:id", paymentHandler.GetInvoice)

			rss := admin.Group("/rss")
			{
				rss.POST("", rssHandler.CreateItem)
				rss.GET("", rssHandler.SearchItems)
				rss.GET("/:id", rssHandler.GetItem)
				rss.DELETE("/:id", rssHandler.DeleteItem)
			}

			recommendations := admin.Group("/recommendations")
			{
				recommendations.POST("", recommendationHandler.CreateRecommendation)
				recommendations.GET("", recommendationHandler.GetRecommendations)
				recommendations.DELETE("/:id", recommendationHandler.DeleteRecommendation)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collectorCfg, err := config.LoadCollectorConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load collector config")
	}
	if collectorCfg.Enabled {
		snapshotCollector := collector.New(collectorCfg, repoRepo, snapshotRepo, rankingService, log)
		go func() {
			if err := snapshotCollector.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.WithError(err).Error("Snapshot collector stopped")
			}
		}()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{Addr: ":" + port, Handler: router}

	go func() {
		log.WithField("port", port).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
