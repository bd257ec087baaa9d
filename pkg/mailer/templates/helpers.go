package templates

import (
	"strconv"
	"strings"
	"time"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithAppName(name string) Option { return func(d *EmailData) { d.AppName = name } }

// WithPostLink builds the public post URL from the API base URL.
func WithPostLink(baseURL string) Option {
	return func(d *EmailData) {
		if baseURL == "" || d.PostID == 0 {
			return
		}
		d.PostURL = strings.TrimRight(baseURL, "/") + "/api/blogs/" + strconv.FormatInt(d.PostID, 10)
	}
}

// NewCommentNotificationData fills the data for telling a post owner about a new comment.
func NewCommentNotificationData(ownerName, ownerEmail, actorName string, postID int64, postTitle, comment string, opts ...Option) map[string]any {
	d := EmailData{
		Name:        ownerName,
		Email:       ownerEmail,
		Type:        CommentNotification,
		ActorName:   actorName,
		PostID:      postID,
		PostTitle:   postTitle,
		CommentText: comment,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return ToMap(d)
}
