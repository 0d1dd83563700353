package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	for _, name := range []string{"index.html", "error.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestColorStyle(t *testing.T) {
	assert.Equal(t, "border-color: #a855f7", string(colorStyle("border-color", "#a855f7")))
	assert.Empty(t, colorStyle("border-color", ""))
	assert.Empty(t, colorStyle("border-color", "red; background: url(x)"))
}

func TestStatic(t *testing.T) {
	f, err := Static().Open("app.css")
	require.NoError(t, err)
	f.Close()
}
