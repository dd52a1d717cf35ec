package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	first := GenerateCode(16)
	second := GenerateCode(16)
	assert.Len(t, first, 16)
	assert.NotEqual(t, first, second)
	assert.Len(t, GenerateCode(0), 32)
	assert.Len(t, GenerateCode(64), 32)
}

func TestRenderEmail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mail.html")
	require.NoError(t, os.WriteFile(path, []byte(`<p>Hi {{.Name}}</p><a href="{{.VerificationURL}}">go</a>`), 0o600))

	body, err := RenderEmail(path, EmailData{Name: "<Sam>", VerificationURL: "https://shop.example.com/verify?token=abc"})
	require.NoError(t, err)
	assert.Contains(t, body, "Hi &lt;Sam&gt;")
	assert.Contains(t, body, "token=abc")

	_, err = RenderEmail(filepath.Join(t.TempDir(), "missing.html"), EmailData{})
	assert.ErrorContains(t, err, "template parse error")
}

func TestRenderEmail_ShippedTemplates(t *testing.T) {
	for _, name := range []string{"verify_email.html", "reset_password.html"} {
		body, err := RenderEmail(filepath.Join("..", "templates", name), EmailData{Name: "Sam", Message: "Welcome", VerificationURL: "https://x.test/"})
		require.NoError(t, err, name)
		assert.Contains(t, body, "Sam", name)
	}
}

func TestSMTPMailer_RequiresAddress(t *testing.T) {
	err := SMTPMailer{}.SendEmail("a@example.com", "Hi", EmailData{}, "unused.html")
	assert.ErrorContains(t, err, "smtp address")
}
