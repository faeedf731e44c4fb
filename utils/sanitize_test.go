package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestSanitizeString(t *testing.T) {
	require.Equal(t, "hello", SanitizeString("  hello  "))
	require.Equal(t, "bold", SanitizeString("<b>bold</b>"))

	long := strings.Repeat("a", 2000)
	require.Len(t, SanitizeString(long), 1000)
}

func TestSanitizeString_TruncationBoundary(t *testing.T) {
	// cut lands right after a space: output must already be trimmed so a
	// second pass changes nothing
	in := strings.Repeat("a", 999) + " " + strings.Repeat("b", 100)
	once := SanitizeString(in)
	require.Equal(t, once, SanitizeString(once))
	require.Equal(t, strings.Repeat("a", 999), once)

	// multi-byte rune straddling the limit must survive whole, not be split
	// into invalid UTF-8
	accented := strings.Repeat("a", 999) + strings.Repeat("é", 10)
	out := SanitizeString(accented)
	require.True(t, utf8.ValidString(out))
	require.Equal(t, 1000, utf8.RuneCountInString(out))
	require.True(t, strings.HasSuffix(out, "é"))
	require.Equal(t, out, SanitizeString(out))
}

func TestSanitizeContent_StripsDangerousMarkup(t *testing.T) {
	in := `<p onclick="evil()">hi</p><script>alert(1)</script><iframe src="x"></iframe>`
	out := SanitizeContent(in)

	require.NotContains(t, out, "<script")
	require.NotContains(t, out, "<iframe")
	require.NotContains(t, out, "onclick")
	require.Contains(t, out, "<p")
	require.Contains(t, out, "hi")
}

func TestSanitizeMap_Recurses(t *testing.T) {
	m := map[string]interface{}{
		"name":    " <Jane> ",
		"content": `<p>ok</p><script>x</script>`,
		"nested": map[string]interface{}{
			"note": "  <b>hi</b>  ",
		},
		"tags":   []interface{}{" <a> ", "b"},
		"guests": float64(2),
	}

	out := SanitizeMap(m)

	require.Equal(t, "Jane", out["name"])
	require.Equal(t, "<p>ok</p>", out["content"])
	require.Equal(t, "hi", out["nested"].(map[string]interface{})["note"])
	require.Equal(t, "a", out["tags"].([]interface{})[0])
	require.Equal(t, float64(2), out["guests"])
}

// Running the sanitizer twice must be a no-op the second time.
func TestSanitizeMap_Idempotent(t *testing.T) {
	m := map[string]interface{}{
		"name":    "  <Jane> Doe ",
		"content": `<p onclick='x'>hi</p><script>alert(1)</script>`,
		"long":    strings.Repeat("z", 1500),
		"edge":    strings.Repeat("a", 999) + " " + strings.Repeat("b", 100),
		"nested":  map[string]interface{}{"v": " <q> "},
	}

	once := SanitizeMap(m)

	copyOnce := map[string]interface{}{}
	for k, v := range once {
		copyOnce[k] = v
	}

	twice := SanitizeMap(once)
	require.Equal(t, copyOnce["name"], twice["name"])
	require.Equal(t, copyOnce["content"], twice["content"])
	require.Equal(t, copyOnce["long"], twice["long"])
	require.Equal(t, copyOnce["edge"], twice["edge"])
	require.Equal(t, copyOnce["nested"], twice["nested"])
}
