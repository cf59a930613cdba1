package htmldom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<!--[if lt IE 9]><html class="no-js lt-ie9"><![endif]-->
<html class="no-js lt-ie9">
<head><title>test</title></head>
<body class="home"><p>hi</p></body>
</html>`

func TestParse(t *testing.T) {
	env, err := Parse(strings.NewReader(page), "test-agent")
	require.NoError(t, err)

	assert.True(t, env.RootElement().HasClass("lt-ie9"))
	assert.True(t, env.RootElement().HasClass("no-js"))
	assert.False(t, env.RootElement().HasClass("js-ready"))
	assert.True(t, env.Body().HasClass("home"))
	assert.Equal(t, "test-agent", env.Window().UserAgent())
}

func TestParseFragment(t *testing.T) {
	env, err := Parse(strings.NewReader(`<p>no wrapper</p>`), "")
	require.NoError(t, err)
	assert.False(t, env.RootElement().HasClass("lt-ie9"))
	assert.Equal(t, 1, env.body.Selection().Find("p").Length())
}

func TestRender(t *testing.T) {
	env, err := Parse(strings.NewReader(page), "")
	require.NoError(t, err)

	env.RootElement().AddClass("js-ready")
	assert.True(t, env.RootElement().HasClass("js-ready"))

	var out strings.Builder
	require.NoError(t, env.Render(&out))
	assert.Contains(t, out.String(), `<html class="no-js lt-ie9 js-ready">`)
	assert.Contains(t, out.String(), `<body class="home">`)
}
