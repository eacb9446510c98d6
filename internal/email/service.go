package email

import (
	"bytes"
	"campaign-intake/internal/observability"
	"campaign-intake/internal/wizard"
	"context"
	"errors"
	"fmt"
	"html/template"
)

var (
	ErrSendingEmail  = errors.New("error sending email")
	ErrEmptyTemplate = errors.New("email template is empty")
)

const submissionTemplate = `
<html>
	<body>
		<h1>New campaign request</h1>
		<p><strong>{{.ClientName}}</strong> submitted a new campaign.</p>
		<ul>
			<li>Task: {{.TaskID}}</li>
			<li>Category: {{.Category}}</li>
			<li>Objective: {{.Objective}}</li>
			<li>Target audience: {{.TargetAudience}}</li>
			<li>Budget: ${{.Budget}}</li>
			<li>Images: {{.ImageCount}}</li>
		</ul>
		{{if .ProgressLink}}<p><a href="{{.ProgressLink}}">Follow the campaign progress</a></p>{{end}}
	</body>
</html>
`

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	ClientName     string
	TaskID         string
	Category       string
	Objective      string
	TargetAudience string
	Budget         string
	ImageCount     int
	ProgressLink   string
}

// EmailService sends submission notifications to the operations inbox
type EmailService struct {
	mailClient    MailSender
	logger        *observability.Logger
	defaultSender string
	recipient     string
	webAppURI     string
	templates     map[string]*template.Template
}

// New creates a new EmailService
func New(mailClient MailSender, defaultSender, recipient, webAppURI string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		recipient:     recipient,
		webAppURI:     webAppURI,
		templates: map[string]*template.Template{
			"submission": template.Must(template.New("submission").Parse(submissionTemplate)),
		},
	}
}

var _ wizard.SubmissionNotifier = (*EmailService)(nil)

// NotifySubmission e-mails a summary of a newly submitted campaign
func (s *EmailService) NotifySubmission(ctx context.Context, submission wizard.Submission) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "submission"},
		observability.Field{Key: "recipient", Value: s.recipient},
		observability.Field{Key: "task_id", Value: submission.TaskID},
	)

	clientName := submission.ClientName
	if clientName == "" {
		clientName = submission.ClientID
	}

	data := TemplateData{
		ClientName:     clientName,
		TaskID:         submission.TaskID,
		Category:       wizard.CategoryLabel(submission.Draft.Category),
		Objective:      wizard.ObjectiveLabel(submission.Draft.Objective),
		TargetAudience: submission.Draft.TargetAudience,
		Budget:         submission.Draft.Budget,
		ImageCount:     len(submission.Draft.Images),
	}
	if s.webAppURI != "" {
		data.ProgressLink = s.webAppURI + wizard.ProgressPath
	}

	htmlContent, err := s.renderTemplate("submission", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render submission email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	subject := fmt.Sprintf("New campaign request from %s", clientName)
	if _, err := s.mailClient.SendEmail(ctx, s.defaultSender, s.recipient, subject, htmlContent); err != nil {
		s.logger.Error(ctx, "failed to send submission email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
