package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template names a file set under templates/; Data feeds it.
type EmailJob struct {
	To       string         `json:"to"`
	Template string         `json:"template"` // e.g. "comment_notification"
	Data     map[string]any `json:"data,omitempty"`
}
