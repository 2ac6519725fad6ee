package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/Aioflcu/paylink/internal/facades"
	"github.com/Aioflcu/paylink/internal/handlers"
	"github.com/Aioflcu/paylink/internal/jwt"
	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/middlewares"
	"github.com/Aioflcu/paylink/internal/models"
	"github.com/Aioflcu/paylink/internal/repositories"
	"github.com/Aioflcu/paylink/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title paylink API
// @version 1.0.0
// @description Wallet, bill payment, savings and rewards service
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds all application, database, Redis, Kafka, provider, logging
// and JWT configuration.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RiskCacheTTLSec   int

	KafkaBrokers string
	KafkaTopic   string

	PayFlexBaseURL    string
	PayFlexAPIKey     string
	PayFlexTimeoutSec int

	MonnifyBaseURL      string
	MonnifyAPIKey       string
	MonnifySecret       string
	MonnifyContractCode string
	MonnifyTimeoutSec   int

	JWTSecretKey string
	JWTExpSecond int
}

// parseConfig loads environment variables from a file and fills the config
// with env values or defaults.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key, defaultValue string) (int, error) {
		return strconv.Atoi(getEnv(key, defaultValue))
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "paylink")
	if cfg.PGPort, err = getEnvInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RiskCacheTTLSec, err = getEnvInt("RISK_CACHE_TTL_SECOND", "600"); err != nil {
		return
	}

	// Kafka config. Empty brokers disable publishing.
	cfg.KafkaBrokers = getEnv("KAFKA_BROKERS", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "paylink.transactions")

	// Bill aggregator config
	cfg.PayFlexBaseURL = getEnv("PAYFLEX_BASE_URL", "https://api.payflex.example")
	cfg.PayFlexAPIKey = getEnv("PAYFLEX_API_KEY", "")
	if cfg.PayFlexTimeoutSec, err = getEnvInt("PAYFLEX_TIMEOUT_SECOND", "30"); err != nil {
		return
	}

	// Collection provider config
	cfg.MonnifyBaseURL = getEnv("MONNIFY_BASE_URL", "https://sandbox.monnify.com")
	cfg.MonnifyAPIKey = getEnv("MONNIFY_API_KEY", "")
	cfg.MonnifySecret = getEnv("MONNIFY_SECRET_KEY", "")
	cfg.MonnifyContractCode = getEnv("MONNIFY_CONTRACT_CODE", "")
	if cfg.MonnifyTimeoutSec, err = getEnvInt("MONNIFY_TIMEOUT_SECOND", "30"); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getEnvInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka and provider clients,
// sets up routes with middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PGHost, cfg.PGPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for topic %s", cfg.KafkaTopic)
	}

	// Provider clients
	payflex := facades.NewPayFlexFacade(cfg.PayFlexBaseURL, cfg.PayFlexAPIKey,
		time.Duration(cfg.PayFlexTimeoutSec)*time.Second)
	monnify := facades.NewMonnifyFacade(cfg.MonnifyBaseURL, cfg.MonnifyAPIKey,
		cfg.MonnifySecret, cfg.MonnifyContractCode,
		time.Duration(cfg.MonnifyTimeoutSec)*time.Second)

	// JWT service
	jwtSvc := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	walletWriteRepo := repositories.NewWalletWriterRepository(db, middlewares.GetTxFromContext)
	walletReadRepo := repositories.NewWalletReaderRepository(db)
	txWriteRepo := repositories.NewTransactionWriterRepository(db, middlewares.GetTxFromContext)
	txReadRepo := repositories.NewTransactionReaderRepository(db)
	savingsWriteRepo := repositories.NewSavingsWriterRepository(db, middlewares.GetTxFromContext)
	savingsReadRepo := repositories.NewSavingsReaderRepository(db)
	rewardWriteRepo := repositories.NewRewardWriterRepository(db, middlewares.GetTxFromContext)
	rewardReadRepo := repositories.NewRewardReaderRepository(db)
	fraudRepo := repositories.NewFraudCheckWriterRepository(db, middlewares.GetTxFromContext)
	pinAttemptRepo := repositories.NewPinAttemptRepository(db, middlewares.GetTxFromContext)
	loginEventRepo := repositories.NewLoginEventRepository(db, middlewares.GetTxFromContext)
	deviceRepo := repositories.NewDeviceRepository(db, middlewares.GetTxFromContext)
	riskCacheRepo := repositories.NewRiskBaselineCacheRepository(rdb,
		time.Duration(cfg.RiskCacheTTLSec)*time.Second)

	// Services. Direct ledger debits carry only zero-point categories, so the
	// ledger itself awards nothing; the purchase saga awards on settlement.
	ledgerService := services.NewLedgerService(walletWriteRepo, walletReadRepo, txWriteRepo, nil, kafkaWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc, walletWriteRepo,
		pinAttemptRepo, loginEventRepo, deviceRepo)
	savingsService := services.NewSavingsService(savingsWriteRepo, savingsReadRepo, ledgerService)
	riskService := services.NewRiskService(userReadRepo, txReadRepo, loginEventRepo,
		pinAttemptRepo, deviceRepo, riskCacheRepo, fraudRepo)
	rewardService := services.NewRewardService(rewardWriteRepo, rewardReadRepo, ledgerService, payflex)
	purchaseService := services.NewPurchaseService(authService, riskService, ledgerService,
		payflex, txReadRepo, rewardService)
	fundingService := services.NewFundingService(userReadRepo, monnify, ledgerService)

	// Handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	setPinHandler := handlers.NewSetPinHandler(authService, jwtSvc)
	balanceHandler := handlers.NewBalanceHandler(ledgerService, jwtSvc)
	fundHandler := handlers.NewFundHandler(fundingService, jwtSvc)
	fundWebhookHandler := handlers.NewFundWebhookHandler(fundingService)
	transferHandler := handlers.NewTransferHandler(ledgerService, jwtSvc)
	airtimeHandler := handlers.NewPurchaseHandler(models.CategoryAirtime, purchaseService, jwtSvc)
	dataHandler := handlers.NewPurchaseHandler(models.CategoryData, purchaseService, jwtSvc)
	electricityHandler := handlers.NewPurchaseHandler(models.CategoryElectricity, purchaseService, jwtSvc)
	cableHandler := handlers.NewPurchaseHandler(models.CategoryCable, purchaseService, jwtSvc)
	validateMeterHandler := handlers.NewValidateMeterHandler(purchaseService)
	validateSmartcardHandler := handlers.NewValidateSmartcardHandler(purchaseService)
	transactionsHandler := handlers.NewTransactionsHandler(txReadRepo, jwtSvc)
	resolveHandler := handlers.NewResolveHandler(purchaseService)
	createPlanHandler := handlers.NewCreatePlanHandler(savingsService, jwtSvc)
	listPlansHandler := handlers.NewListPlansHandler(savingsService, jwtSvc)
	withdrawPlanHandler := handlers.NewWithdrawPlanHandler(savingsService, jwtSvc)
	deletePlanHandler := handlers.NewDeletePlanHandler(savingsService, jwtSvc)
	rewardsHandler := handlers.NewRewardsHandler(rewardService, jwtSvc)
	redeemHandler := handlers.NewRedeemHandler(rewardService, jwtSvc)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(txMiddleware)
			r.Post("/register", registerHandler)
			r.Post("/fund/webhook", fundWebhookHandler)
		})
		r.Post("/login", loginHandler)

		// Protected read-only routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/balance", balanceHandler)
			r.Get("/transactions", transactionsHandler)
			r.Get("/savings", listPlansHandler)
			r.Get("/rewards", rewardsHandler)
			r.Post("/validate/meter", validateMeterHandler)
			r.Post("/validate/smartcard", validateSmartcardHandler)
		})

		// Protected mutating routes, each inside one DB transaction
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(txMiddleware)
			r.Post("/pin", setPinHandler)
			r.Post("/fund", fundHandler)
			r.Post("/transfer", transferHandler)
			r.Post("/purchase/airtime", airtimeHandler)
			r.Post("/purchase/data", dataHandler)
			r.Post("/purchase/electricity", electricityHandler)
			r.Post("/purchase/cable", cableHandler)
			r.Post("/savings", createPlanHandler)
			r.Post("/savings/{planID}/withdraw", withdrawPlanHandler)
			r.Delete("/savings/{planID}", deletePlanHandler)
			r.Post("/rewards/redeem", redeemHandler)
			r.Post("/admin/transactions/resolve", resolveHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
