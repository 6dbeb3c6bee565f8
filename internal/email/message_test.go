package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFrom(t *testing.T) {
	assert.Equal(t, "Mehdi <me@x.com>", formatFrom("Mehdi", "me@x.com"))
	assert.Equal(t, "me@x.com", formatFrom("", "me@x.com"))
}

func TestBuildMIMEMultipart(t *testing.T) {
	raw := buildMIME("Mehdi <me@x.com>", Message{
		To:       "a@x.com",
		Subject:  Subject,
		TextBody: "Tu es capable. — Jobs",
		HTMLBody: "<p>Tu es capable. — Jobs</p>",
	})

	lines := strings.Split(raw, "\r\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "From: Mehdi <me@x.com>", lines[0])
	assert.Equal(t, "To: a@x.com", lines[1])

	assert.Contains(t, raw, "Content-Type: multipart/alternative; boundary="+mimeBoundary)
	assert.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8")
	assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8")
	assert.Contains(t, raw, "Tu es capable. — Jobs")
	assert.Contains(t, raw, "<p>Tu es capable. — Jobs</p>")

	// The plain part must come before the HTML alternative, and the
	// message must end with the closing boundary.
	assert.Less(t, strings.Index(raw, "text/plain"), strings.Index(raw, "text/html"))
	assert.True(t, strings.HasSuffix(raw, "--"+mimeBoundary+"--"))
}

func TestBuildMIMESinglePart(t *testing.T) {
	textOnly := buildMIME("me@x.com", Message{To: "a@x.com", Subject: "s", TextBody: "corps"})
	assert.Contains(t, textOnly, "Content-Type: text/plain; charset=UTF-8")
	assert.NotContains(t, textOnly, "multipart/alternative")

	htmlOnly := buildMIME("me@x.com", Message{To: "a@x.com", Subject: "s", HTMLBody: "<p>corps</p>"})
	assert.Contains(t, htmlOnly, "Content-Type: text/html; charset=UTF-8")
	assert.NotContains(t, htmlOnly, "multipart/alternative")
}
