package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/devforum/backend/config"
	"github.com/devforum/backend/internal/application"
	pginfra "github.com/devforum/backend/internal/infrastructure/postgres"
	"github.com/devforum/backend/pkg/helpers"
	"github.com/devforum/backend/pkg/mailer"
)

// requeueOn reports whether a failed delivery should go back on the
// queue. A missing recipient never resolves itself, so requeuing such
// jobs would spin them through the consumer forever.
func requeueOn(err error) bool {
	return !errors.Is(err, application.ErrUserNotFound)
}

// notify_worker drains the notification queue: each job marks the
// recipient's unread list and, when mail sending is enabled, emails them.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-notify-worker", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQNotifyQue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	users := pginfra.NewUserRepository(pool)
	notifications := application.NewNotificationService(users, rdb, logger)

	var mg *mailer.Mailgun
	if cfg.MailSendEnabled {
		if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
			log.Fatal("MAIL_SEND_ENABLED=true but Mailgun not configured")
		}
		mg = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQNotifyQue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQNotifyQue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var job application.NotificationJob
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				logger.Warnf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}

			c, cancel := context.WithTimeout(ctx, 15*time.Second)
			if err := notifications.Deliver(c, job.RecipientID, job.NotificationID); err != nil {
				cancel()
				logger.Errorf("deliver %s to %s: %v", job.NotificationID, job.RecipientID, err)
				_ = msg.Nack(false, requeueOn(err))
				continue
			}

			if mg != nil && job.Kind == application.KindAnswerPosted {
				if u, err := users.GetByID(c, job.RecipientID); err == nil {
					subject := "Your question has a new answer"
					text := fmt.Sprintf("%s posted an answer to your question.", job.ActorName)
					if err := mg.Send(c, u.Email, subject, text); err != nil {
						logger.Warnf("email to %s failed: %v", u.Email, err)
					}
				}
			}
			cancel()
			_ = msg.Ack(false)
		}
		close(done)
	}()

	logger.Infof("notify worker consuming queue %q", cfg.RabbitMQNotifyQue)
	select {
	case <-stop:
		logger.Info("shutting down notify worker")
		_ = ch.Close()
		<-done
	case <-done:
		logger.Info("message stream closed")
	}
}
