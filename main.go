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
	"github.com/gofiber/fiber/v2/utils"

	"masjidhub_backend/internals/configs"
	database "masjidhub_backend/internals/databases"
	adminModel "masjidhub_backend/internals/features/admins/model"
	registrationModel "masjidhub_backend/internals/features/registrations/model"
	helper "masjidhub_backend/internals/helpers"
	"masjidhub_backend/internals/helpers/oss"
	middlewares "masjidhub_backend/internals/middlewares"
	"masjidhub_backend/internals/mirror"
	routes "masjidhub_backend/internals/route"
	"masjidhub_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.FromFiberError,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		BodyLimit:               520 * 1024 * 1024, // di atas batas bucket video
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                 // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	// 🧱 skema: admin console, pendaftaran kegiatan, slot konten
	if err := database.DB.AutoMigrate(
		&adminModel.AdminUserModel{},
		&registrationModel.ActivityRegistrationModel{},
		&mirror.ContentSlotModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	if configs.GetEnv("RUN_SEED", "false") == "true" {
		seeds.RunAllSeeds(database.DB)
	}

	// 🪞 content mirror: muat slot (atau seed bawaan) + watcher persist
	contentMirror := mirror.New(mirror.NewGormSidestore(database.DB), nil)

	// ☁️ OSS: kalau env belum lengkap, upload balas StorageUnavailable
	var gatekeeper *oss.Gatekeeper
	if svc, err := oss.NewOSSServiceFromEnv(); err != nil {
		log.Printf("⚠️ OSS tidak dikonfigurasi: %v", err)
		gatekeeper = oss.NewGatekeeper(nil)
	} else {
		gatekeeper = oss.NewGatekeeper(svc)
	}

	// ❤️ Health check (anti-cold start)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, contentMirror, gatekeeper)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: tunggu persist mirror, lalu tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	contentMirror.Close()

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
