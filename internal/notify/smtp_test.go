package notify

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSMTPMailer_Send(t *testing.T) {
	req := require.New(t)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotBody []byte
	var gotAuth smtp.Auth

	m := NewSMTPMailer(SMTPConfig{Host: "mail.local", Port: 2525, Username: "bot", Password: "secret", From: "noreply@webinars.local"})
	m.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo, gotBody = addr, a, from, to, msg
		return nil
	}

	err := m.Send(context.Background(), Message{To: "dimos@example.com", Subject: "New participation", Body: "hello"})

	req.NoError(err)
	req.Equal("mail.local:2525", gotAddr)
	req.NotNil(gotAuth)
	req.Equal("noreply@webinars.local", gotFrom)
	req.Equal([]string{"dimos@example.com"}, gotTo)
	req.True(strings.Contains(string(gotBody), "Subject: New participation\r\n"))
	req.True(strings.HasSuffix(string(gotBody), "\r\n\r\nhello\r\n"))
}

func TestSMTPMailer_SendWithoutAuth(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "mail.local", Port: 25, From: "noreply@webinars.local"})
	m.sendMail = func(_ string, a smtp.Auth, _ string, _ []string, _ []byte) error {
		require.Nil(t, a)
		return nil
	}
	require.NoError(t, m.Send(context.Background(), Message{To: "a@example.com"}))
}

func TestSMTPMailer_SendWrapsRelayError(t *testing.T) {
	relayErr := errors.New("connection refused")
	m := NewSMTPMailer(SMTPConfig{Host: "mail.local", Port: 25})
	m.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return relayErr }

	err := m.Send(context.Background(), Message{To: "a@example.com"})
	require.ErrorIs(t, err, relayErr)
}

func TestInMemoryMailer_RecordsInOrder(t *testing.T) {
	req := require.New(t)
	m := NewInMemoryMailer()

	req.NoError(m.Send(context.Background(), Message{To: "a@example.com"}))
	req.NoError(m.Send(context.Background(), Message{To: "b@example.com"}))

	sent := m.Sent()
	req.Len(sent, 2)
	req.Equal("a@example.com", sent[0].To)
	req.Equal("b@example.com", sent[1].To)
}
