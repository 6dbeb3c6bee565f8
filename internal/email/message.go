package email

import (
	"fmt"
	"strings"
)

const mimeBoundary = "boundary_motibot_email"

// formatFrom renders the From header value, with an optional display name.
func formatFrom(senderName, senderAddress string) string {
	if senderName != "" {
		return fmt.Sprintf("%s <%s>", senderName, senderAddress)
	}
	return senderAddress
}

// buildMIME assembles the raw RFC 2822 message. When both bodies are present
// the message is multipart/alternative so clients pick the richest part they
// can display; otherwise a single-part message is built.
func buildMIME(from string, msg Message) string {
	switch {
	case msg.HTMLBody != "" && msg.TextBody != "":
		return strings.Join([]string{
			"From: " + from,
			"To: " + msg.To,
			"Subject: " + msg.Subject,
			"MIME-Version: 1.0",
			"Content-Type: multipart/alternative; boundary=" + mimeBoundary,
			"",
			"--" + mimeBoundary,
			"Content-Type: text/plain; charset=UTF-8",
			"Content-Transfer-Encoding: 8bit",
			"",
			msg.TextBody,
			"",
			"--" + mimeBoundary,
			"Content-Type: text/html; charset=UTF-8",
			"Content-Transfer-Encoding: 8bit",
			"",
			msg.HTMLBody,
			"",
			"--" + mimeBoundary + "--",
		}, "\r\n")
	case msg.HTMLBody != "":
		return strings.Join([]string{
			"From: " + from,
			"To: " + msg.To,
			"Subject: " + msg.Subject,
			"MIME-Version: 1.0",
			"Content-Type: text/html; charset=UTF-8",
			"",
			msg.HTMLBody,
		}, "\r\n")
	default:
		return strings.Join([]string{
			"From: " + from,
			"To: " + msg.To,
			"Subject: " + msg.Subject,
			"MIME-Version: 1.0",
			"Content-Type: text/plain; charset=UTF-8",
			"",
			msg.TextBody,
		}, "\r\n")
	}
}
