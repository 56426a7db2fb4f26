package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/icu-ward-dev/shift-manager/backend/internal/config"
	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
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
		logger.Error("โหลดค่าตั้งค่าไม่สำเร็จ", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * สร้าง client อีเมล
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("สร้าง client อีเมลไม่สำเร็จ", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// ลอง dial หนึ่งครั้งเพื่อยืนยันว่าเชื่อมต่อเซิร์ฟเวอร์อีเมลได้
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("เชื่อมต่อเซิร์ฟเวอร์อีเมลไม่สำเร็จ", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * เชื่อมต่อ RabbitMQ
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("เชื่อมต่อ RabbitMQ ไม่สำเร็จ", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("เปิด channel ไม่สำเร็จ", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"notify_queue", // ชื่อ queue
		true,           // durable
		false,          // ไม่ auto delete เพื่อไม่ให้ queue หายตอนไม่มี consumer
		false,          // ไม่ exclusive
		false,          // รอ RabbitMQ ยืนยันว่าสร้าง queue สำเร็จ
		nil,
	)
	if err != nil {
		logger.Error("ประกาศ queue ไม่สำเร็จ", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // ให้ RabbitMQ ตั้งชื่อ consumer เอง
		false, // ไม่ auto ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("เริ่มรับข้อความไม่สำเร็จ", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("ได้รับข้อความ", slog.String("message", string(msg.Body)))

				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("อ่านข้อความอีเมลไม่สำเร็จ", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("ตั้งผู้ส่งไม่สำเร็จ", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					logger.Error("ตั้งผู้รับไม่สำเร็จ", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				switch mailMessage.Type {
				case "schedule_published":
					tmpl, err := template.ParseFiles("./templates/schedule_published_email.html")
					if err != nil {
						logger.Error("อ่านเทมเพลตอีเมลไม่สำเร็จ", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("ตั้งเนื้อหาอีเมลไม่สำเร็จ", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("ระบบตารางเวรหอผู้ป่วย - เผยแพร่ตารางเวรใหม่")
				default:
					logger.Error("ไม่รู้จักประเภทอีเมลนี้", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					logger.Error("ส่งอีเมลไม่สำเร็จ", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // เอาข้อความกลับเข้า queue
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("กำลังรอข้อความ... (กด CTRL+C เพื่อออก)")
	<-sigChan

	slog.Info("กำลังปิด notify worker...")
	cancel()
	wg.Wait()
	slog.Info("notify worker ปิดเรียบร้อย")
}
