package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/config"
	"github.com/oksasatya/go-ddd-blog-api/pkg/helpers"
	"github.com/oksasatya/go-ddd-blog-api/pkg/mailer"
	mailtpl "github.com/oksasatya/go-ddd-blog-api/pkg/mailer/templates"
)

// errBadMessage marks jobs that can never succeed; they are dropped instead of requeued.
var errBadMessage = errors.New("bad message")

const consumerTag = "notification-worker"

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-notification-worker", cfg.Env)

	if !cfg.NotifyEnabled {
		logger.Info("NOTIFY_ENABLED=false; notification worker disabled")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQNotifyQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		logger.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		logger.Fatalf("qos: %v", err)
	}
	if err := helpers.DeclareQueue(ch, cfg.RabbitMQNotifyQueue); err != nil {
		logger.Fatal(err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQNotifyQueue, consumerTag, false, false, false, false, nil)
	if err != nil {
		logger.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		consume(ctx, msgs, mg, logger)
		close(done)
	}()

	logger.WithField("queue", cfg.RabbitMQNotifyQueue).Info("notification worker listening")
	<-stop
	logger.Info("shutting down...")
	// stop deliveries first; unacked prefetched messages go back to the queue
	if err := ch.Cancel(consumerTag, false); err != nil {
		logger.WithError(err).Warn("cancel consumer")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

// consume handles deliveries until msgs closes or ctx is cancelled.
func consume(ctx context.Context, msgs <-chan amqp.Delivery, send mailer.Sender, logger *logrus.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			if ctx.Err() != nil {
				_ = msg.Nack(false, true)
				return
			}
			err := process(ctx, msg.Body, send)
			switch {
			case err == nil:
				_ = msg.Ack(false)
			case errors.Is(err, errBadMessage):
				logger.WithError(err).Warn("dropping notification job")
				_ = msg.Nack(false, false)
			default:
				logger.WithError(err).Error("send failed; requeueing")
				_ = msg.Nack(false, true)
			}
		}
	}
}

// process decodes one EmailJob, renders its templates and sends it.
func process(ctx context.Context, body []byte, send mailer.Sender) error {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return errors.Wrapf(errBadMessage, "decode: %v", err)
	}
	if job.To == "" || job.Template == "" {
		return errors.Wrap(errBadMessage, "missing recipient or template")
	}

	subject, text, html, err := mailtpl.Render(job.Template, job.Data)
	if err != nil {
		return errors.Wrapf(errBadMessage, "render %s: %v", job.Template, err)
	}

	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	return errors.Wrapf(send.Send(c, job.To, subject, text, html), "send to %s", job.To)
}
