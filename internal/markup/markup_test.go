package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := New()

	t.Run("plain prose becomes a paragraph", func(t *testing.T) {
		out, err := r.Render("His mother had always taught him")
		require.NoError(t, err)
		assert.Contains(t, out, "<p>His mother had always taught him</p>")
	})

	t.Run("inline emphasis survives", func(t *testing.T) {
		out, err := r.Render("this is *important* and `code`")
		require.NoError(t, err)
		assert.Contains(t, out, "<em>important</em>")
		assert.Contains(t, out, "<code>code</code>")
	})

	t.Run("script injection is stripped", func(t *testing.T) {
		out, err := r.Render(`hello <script>alert("x")</script> world`)
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
		assert.NotContains(t, out, "alert")
	})

	t.Run("event handlers are stripped", func(t *testing.T) {
		out, err := r.Render(`<img src="x" onerror="steal()">`)
		require.NoError(t, err)
		assert.NotContains(t, out, "onerror")
	})
}
