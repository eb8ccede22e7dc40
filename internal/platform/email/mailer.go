package email

type Mailer interface {
	SendHTML(to []string, subject, tmplName string, data map[string]string) error
}
