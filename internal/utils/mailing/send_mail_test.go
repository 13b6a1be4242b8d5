package mailing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcomeEscapesName(t *testing.T) {
	body, err := RenderWelcome("<b>Ana</b>", "https://rhea.app")
	require.NoError(t, err)

	assert.Contains(t, body, "&lt;b&gt;Ana&lt;/b&gt;")
	assert.Contains(t, body, `href="https://rhea.app"`)
}

func TestSendMailWithoutHost(t *testing.T) {
	m := &smtpMailer{cfg: MailConfig{}}
	assert.Error(t, m.SendMail("a@b.c", "s", "b"))
}
