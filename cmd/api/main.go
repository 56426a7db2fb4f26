package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/icu-ward-dev/shift-manager/backend/internal/config"
	"github.com/icu-ward-dev/shift-manager/backend/internal/handler"
	"github.com/icu-ward-dev/shift-manager/backend/internal/repository"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * สร้าง logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * โหลดค่าตั้งค่า
	 **********************************************/
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("โหลดค่าตั้งค่าไม่สำเร็จ", "error", err)
		return
	}

	/**********************************************
	 * เชื่อมต่อฐานข้อมูล
	 **********************************************/
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("สร้าง connection pool ไม่สำเร็จ", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open แค่สร้าง pool ยังไม่ต่อฐานข้อมูลจริง ต้อง ping เองก่อน
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("เชื่อมต่อฐานข้อมูลไม่สำเร็จ", "error", err)
		return
	}

	/**********************************************
	 * สร้าง repository
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * เชื่อมต่อ rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("เชื่อมต่อ rabbitmq ไม่สำเร็จ", "error", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("เปิด channel ไม่สำเร็จ", "error", err)
		return
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		"notify_queue",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("ประกาศ queue ไม่สำเร็จ", "error", err)
		return
	}

	/**********************************************
	 * เชื่อมต่อ redis
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	/**********************************************
	 * สร้าง handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, ch, rdb)
	if err != nil {
		logger.Error("สร้าง handler ไม่สำเร็จ", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * เริ่ม HTTP server
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("กำลังเริ่มเซิร์ฟเวอร์...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("เริ่มเซิร์ฟเวอร์ไม่สำเร็จ", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("กำลังปิดเซิร์ฟเวอร์...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("ปิดเซิร์ฟเวอร์ไม่สำเร็จ", slog.String("error", err.Error()))
	}
	logger.Info("ปิดเซิร์ฟเวอร์เรียบร้อย")
}
