package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/template/html/v2"
	"github.com/gofiber/utils"

	"collegeschedule_backend/internals/configs"
	database "collegeschedule_backend/internals/databases"
	boardClient "collegeschedule_backend/internals/features/board/client"
	"collegeschedule_backend/internals/features/board/engine"
	authRepo "collegeschedule_backend/internals/features/users/auth/repository"
	scheduler "collegeschedule_backend/internals/features/users/auth/scheduler"
	authService "collegeschedule_backend/internals/features/users/auth/service"
	"collegeschedule_backend/internals/helpers/flash"
	middlewares "collegeschedule_backend/internals/middlewares"
	routes "collegeschedule_backend/internals/route"
	routeDetails "collegeschedule_backend/internals/route/details"
	"collegeschedule_backend/internals/seeds"
)

func newViews() *html.Engine {
	engine := html.New(configs.GetEnv("VIEWS_DIR", "./views"), ".html")
	engine.AddFunc("json", func(v any) string {
		b, err := sonic.MarshalString(v)
		if err != nil {
			return "null"
		}
		return b
	})
	engine.Reload(configs.GetEnvBool("VIEWS_RELOAD", false))
	return engine
}

func newToastStore() flash.Store {
	if rdb := configs.ConnectRedis(); rdb != nil {
		log.Println("[INFO] Toasts stored in Redis")
		return flash.NewRedisStore(rdb, configs.ToastTTL)
	}
	log.Println("[INFO] Toasts stored in memory")
	return flash.NewMemoryStore(configs.ToastTTL)
}

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		Views:                   newViews(),
		ViewsLayout:             "layouts/main",
		PassLocalsToViews:       true,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// request id + per-request deadline; board pages call back into /api/v1, so this sits above BOARD_API_TIMEOUT
	reqTimeout := configs.GetEnvDuration("HTTP_REQUEST_TIMEOUT", configs.BoardAPITimeout+5*time.Second)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), reqTimeout)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	// DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if configs.GetEnvBool("DB_AUTOMIGRATE", true) {
		if err := database.AutoMigrate(database.DB); err != nil {
			log.Fatalf("[ERROR] migrate: %v", err)
		}
	}
	if configs.GetEnvBool("RUN_SEEDS", false) {
		seeds.RunAllSeeds(database.DB, configs.GetEnv("SEED_DIR", "internals/seeds/data"))
	}

	// sessions + blacklist cleanup
	blacklist := authRepo.NewGormBlacklist(database.DB)
	sessions, err := authService.NewSessionService(authService.Config{
		Secret:       configs.JWTSecret,
		TTL:          configs.SessionTTL,
		Username:     configs.AdminUsername,
		Password:     configs.AdminPassword,
		PasswordHash: configs.AdminPasswordHash,
	}, blacklist)
	if err != nil {
		log.Fatalf("[ERROR] session service: %v", err)
	}
	cleanup, err := scheduler.StartBlacklistCleanup(blacklist)
	if err != nil {
		log.Fatalf("[ERROR] blacklist cleanup: %v", err)
	}

	// admin board: one board per signed-in user, all talking to /api/v1
	toasts := newToastStore()
	api := boardClient.New(configs.BoardAPIBaseURL, configs.BoardAPITimeout)
	boards := engine.NewBoards(func(owner string) *engine.Board {
		return engine.New(api, engine.FlashNotifier{Store: toasts, Owner: owner})
	})

	routes.SetupRoutes(app, database.DB, routeDetails.AdminDeps{
		Sessions: sessions,
		Boards:   boards,
		Toasts:   toasts,
		History:  api,
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "8080")

	go func() {
		log.Printf("[INFO] Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: stop cron, drain http, close pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] Shutting down...")

	<-cleanup.Stop().Done()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close()
}
