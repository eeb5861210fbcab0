package service_test

import (
	"errors"
	"testing"

	"schoolsite/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentMail struct{ to, replyTo, subject, body string }

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, replyTo, subject, body string) error {
	f.sent = append(f.sent, sentMail{to, replyTo, subject, body})
	return f.err
}

func TestContactSubmitMailsSchool(t *testing.T) {
	m := &fakeMailer{}
	svc := service.NewContactService(m, "office@school.test", zap.NewNop())

	svc.Submit(service.ContactMessage{Name: "Jane", Email: "jane@example.com", Message: "Admission dates?"})

	require.Len(t, m.sent, 1)
	assert.Equal(t, "office@school.test", m.sent[0].to)
	assert.Equal(t, "jane@example.com", m.sent[0].replyTo)
	assert.Contains(t, m.sent[0].subject, "Jane")
	assert.Contains(t, m.sent[0].body, "Admission dates?")
}

func TestContactSubmitSwallowsFailures(t *testing.T) {
	m := &fakeMailer{err: errors.New("smtp down")}
	svc := service.NewContactService(m, "office@school.test", zap.NewNop())
	assert.NotPanics(t, func() {
		svc.Submit(service.ContactMessage{Name: "Jane", Email: "jane@example.com", Message: "hi"})
	})
}

func TestContactSubmitWithoutMailer(t *testing.T) {
	svc := service.NewContactService(nil, "", zap.NewNop())
	assert.NotPanics(t, func() {
		svc.Submit(service.ContactMessage{Name: "Jane"})
	})
}
