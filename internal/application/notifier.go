package application

import (
	"context"
	"time"

	"github.com/oksasatya/go-ddd-blog-api/pkg/mailer"
	tpl "github.com/oksasatya/go-ddd-blog-api/pkg/mailer/templates"
)

// CommentNotification tells a post owner that someone commented on their post.
type CommentNotification struct {
	OwnerName  string
	OwnerEmail string
	ActorName  string
	PostID     int64
	PostTitle  string
	Comment    string
	At         time.Time
}

// CommentNotifier delivers comment notifications out of band.
type CommentNotifier interface {
	NotifyComment(ctx context.Context, n CommentNotification) error
}

// JSONPublisher publishes a JSON message to a queue.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// QueueNotifier turns notifications into email jobs on the notification queue.
type QueueNotifier struct {
	Pub     JSONPublisher
	AppName string
	BaseURL string
}

func NewQueueNotifier(pub JSONPublisher, appName, baseURL string) *QueueNotifier {
	return &QueueNotifier{Pub: pub, AppName: appName, BaseURL: baseURL}
}

func (q *QueueNotifier) NotifyComment(ctx context.Context, n CommentNotification) error {
	data := tpl.NewCommentNotificationData(
		n.OwnerName,
		n.OwnerEmail,
		n.ActorName,
		n.PostID,
		n.PostTitle,
		n.Comment,
		tpl.WithAppName(q.AppName),
		tpl.WithTime(n.At),
		tpl.WithPostLink(q.BaseURL),
	)
	job := mailer.EmailJob{To: n.OwnerEmail, Template: tpl.CommentNotification, Data: data}
	return q.Pub.PublishJSON(ctx, job)
}
