package mail

import (
	"strings"
	"testing"
)

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("noreply@pedidos.local", "maria@example.com", "Pedido finalizado", "Obrigado!"))

	for _, want := range []string{
		"From: noreply@pedidos.local\r\n",
		"To: maria@example.com\r\n",
		"Subject: Pedido finalizado\r\n",
		"charset=utf-8",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}

	// Тело отделяется от заголовков пустой строкой.
	if !strings.Contains(msg, "\r\n\r\nObrigado!") {
		t.Errorf("body not separated from headers:\n%s", msg)
	}
}

func TestLogSender(t *testing.T) {
	sender := NewLogSender(nil)
	if err := sender.Send("maria@example.com", "subject", "body"); err != nil {
		t.Fatalf("log sender must never fail, got %v", err)
	}
}
