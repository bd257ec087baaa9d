package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_CommentNotification(t *testing.T) {
	data := NewCommentNotificationData(
		"Alice", "alice@example.com", "Bob", 12, "Hello", "<b>nice</b> post",
		WithAppName("Blog"),
		WithTime(time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)),
		WithPostLink("http://localhost:3002/"),
	)

	subject, text, html, err := Render(CommentNotification, data)
	require.NoError(t, err)

	assert.Equal(t, `Bob commented on "Hello"`, subject)
	assert.Contains(t, text, "Hi Alice,")
	assert.Contains(t, text, "http://localhost:3002/api/blogs/12")
	assert.Contains(t, text, "02 January 2024, 03:04")
	assert.Contains(t, html, "&lt;b&gt;nice&lt;/b&gt; post")
}

func TestRender_Defaults(t *testing.T) {
	data := NewCommentNotificationData("", "owner@example.com", "", 0, "Title", "hi")

	subject, text, _, err := Render(CommentNotification, data)
	require.NoError(t, err)

	assert.Equal(t, `Someone commented on "Title"`, subject)
	assert.Contains(t, text, "Hi there,")
	assert.NotContains(t, text, "Read it here")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("missing", nil)
	assert.Error(t, err)
}
