package email

type StubMailer struct {
	SendHTMLFunc func(to []string, subject, tmplName string, data map[string]string) error
}

var _ Mailer = (*StubMailer)(nil)

func (m *StubMailer) SendHTML(to []string, subject, tmplName string, data map[string]string) error {
	if m.SendHTMLFunc != nil {
		return m.SendHTMLFunc(to, subject, tmplName, data)
	}
	return nil
}
