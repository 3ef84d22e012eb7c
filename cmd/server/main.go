package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/task-tracker/internal/config"
	"github.com/iliyamo/task-tracker/internal/database"
	"github.com/iliyamo/task-tracker/internal/handler"
	"github.com/iliyamo/task-tracker/internal/queue"
	"github.com/iliyamo/task-tracker/internal/repository"
	"github.com/iliyamo/task-tracker/internal/router"
	queue_publisher "github.com/iliyamo/task-tracker/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	cacheCfg := config.LoadCacheConfig()
	rdb := config.NewRedisClient() // nil when Redis is unreachable; caching disabled
	if rdb == nil {
		log.Printf("redis unavailable, response cache disabled")
	}

	users := repository.NewUserRepo(db)
	tasks := repository.NewTaskRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	authH := handler.NewAuthHandler(cfg, users)
	taskH := handler.NewTaskHandler(cfg, tasks, cacheCfg, rdb, queue_publisher.PublishTaskActivity)

	router.RegisterRoutes(e)
	router.RegisterAPI(e, authH, taskH, cfg, cacheCfg, rdb)

	go func() {
		if err := queue.StartTaskActivityConsumer(); err != nil {
			log.Printf("task-activity consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
