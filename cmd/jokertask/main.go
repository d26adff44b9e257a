package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/FabianaArciniegas/joker-task/internal/application/auth"
	"github.com/FabianaArciniegas/joker-task/internal/application/ports"
	"github.com/FabianaArciniegas/joker-task/internal/application/user"
	"github.com/FabianaArciniegas/joker-task/internal/application/workspace"
	"github.com/FabianaArciniegas/joker-task/internal/config"
	infraauth "github.com/FabianaArciniegas/joker-task/internal/infrastructure/auth"
	"github.com/FabianaArciniegas/joker-task/internal/infrastructure/email"
	httprouter "github.com/FabianaArciniegas/joker-task/internal/infrastructure/http"
	"github.com/FabianaArciniegas/joker-task/internal/infrastructure/http/handlers"
	"github.com/FabianaArciniegas/joker-task/internal/infrastructure/http/middleware"
	mongorepo "github.com/FabianaArciniegas/joker-task/internal/infrastructure/persistence/mongo"
	"github.com/FabianaArciniegas/joker-task/internal/infrastructure/queue"
	"github.com/FabianaArciniegas/joker-task/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.Database.ConnectionURI))
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	defer cancelPing()
	if err := client.Ping(pingCtx, nil); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	db := client.Database(cfg.Database.Name)

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	healthHandler := handlers.NewHealthHandler(client, redisClient)

	userRepo := mongorepo.NewUserRepository(db)
	workspaceRepo := mongorepo.NewWorkspaceRepository(db)

	var taskEnqueuer ports.TaskEnqueuer
	var asynqWorker *queue.Worker
	if redisClient != nil {
		redisOpt, _ := redis.ParseURL(cfg.Redis.URL)
		asynqOpt := asynq.RedisClientOpt{Addr: redisOpt.Addr, Password: redisOpt.Password, DB: redisOpt.DB}
		asynqEnq := queue.NewAsynqEnqueuer(asynqOpt, log)
		defer asynqEnq.Close()
		taskEnqueuer = asynqEnq

		var sender queue.EmailSender
		if cfg.SMTP.Username != "" && cfg.SMTP.Password != "" {
			s, err := email.NewSender(email.Config{
				Server:        cfg.SMTP.Server,
				Port:          cfg.SMTP.Port,
				Username:      cfg.SMTP.Username,
				Password:      cfg.SMTP.Password,
				From:          cfg.SMTP.From,
				ResetURLBase:  cfg.Links.ResetURLBase,
				VerifyURLBase: cfg.Links.VerifyURLBase,
			}, log)
			if err != nil {
				log.Fatal().Err(err).Msg("create email sender")
			}
			sender = s
		} else {
			log.Warn().Msg("SMTP not configured; emails will be logged only")
		}
		asynqWorker = queue.NewWorker(asynqOpt, sender, log)
		go func() {
			if err := asynqWorker.Run(); err != nil {
				log.Warn().Err(err).Msg("asynq worker stopped")
			}
		}()
	} else {
		log.Warn().Msg("redis not configured; email delivery disabled")
		taskEnqueuer = queue.NewNoopEnqueuer()
	}

	hasher := security.NewArgon2Hasher(security.DefaultArgon2Params())
	codec := infraauth.NewCodec(cfg.JWT.SecretKey, cfg.JWT.SecretKeyRefresh)

	loginUC := auth.NewLogin(userRepo, hasher, codec)
	refreshUC := auth.NewRefresh(userRepo, codec)
	logoutUC := auth.NewLogout(userRepo)
	forgotUC := auth.NewForgotPassword(userRepo, taskEnqueuer)
	resetUC := auth.NewResetPassword(userRepo, hasher)
	verifyUC := auth.NewVerifyUser(userRepo)

	userService := user.NewService(userRepo, hasher, taskEnqueuer)
	workspaceService := workspace.NewService(workspaceRepo)

	authHandler := handlers.NewAuthHandler(loginUC, refreshUC, logoutUC, forgotUC, resetUC, verifyUC)
	usersHandler := handlers.NewUsersHandler(userService)
	workspacesHandler := handlers.NewWorkspacesHandler(workspaceService)

	requireBearer := middleware.NewAuthValidator(codec).Handler
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.IsDevelopment()))

	router := httprouter.NewRouter(httprouter.RouterConfig{
		APIPrefix:         cfg.Server.APIPrefix,
		AuthHandler:       authHandler,
		UsersHandler:      usersHandler,
		WorkspacesHandler: workspacesHandler,
		HealthHandler:     healthHandler,
		ProcessID:         middleware.ProcessID(log),
		RequireBearer:     requireBearer,
		Secure:            secureMiddleware,
		Metrics:           true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if asynqWorker != nil {
		asynqWorker.Shutdown()
	}
	log.Info().Msg("server stopped")
}
