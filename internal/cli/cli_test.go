package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const robotoCSS = `@font-face {
  font-family: 'Roboto';
  font-style: normal;
  font-weight: 700;
  src: local('Roboto Bold'), local('Roboto-Bold'), url(https://fonts.gstatic.com/s/roboto/v18/KFOlCnqEu92Fr1MmWUlfChc9.ttf) format('truetype');
}
`

func newFontServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "family=Roboto:700" {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		fmt.Fprint(w, robotoCSS)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeFonts(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd("v1.2.3")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "fontface version v1.2.3\n", out)
}

func TestFetch(t *testing.T) {
	srv := newFontServer(t)
	fonts := writeFonts(t, "Roboto-Bold.ttf")
	dest := filepath.Join(t.TempDir(), "css", "font.css")

	out, err := run(t, "fetch", "--src", filepath.Join(fonts, "*.ttf"), "--dest", dest, "--url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Completed: 1 written")

	css, err := os.ReadFile(dest)
	require.NoError(t, err)
	rel, err := filepath.Rel(filepath.Dir(dest), filepath.Join(fonts, "Roboto-Bold.ttf"))
	require.NoError(t, err)
	assert.Contains(t, string(css), "url("+filepath.ToSlash(rel)+")")
	assert.NotContains(t, string(css), "fonts.gstatic.com")
}

func TestFetchStrict(t *testing.T) {
	srv := newFontServer(t)
	fonts := writeFonts(t, "Lato-Black.ttf")
	dest := filepath.Join(t.TempDir(), "font.css")
	args := []string{"fetch", "--src", filepath.Join(fonts, "*.ttf"), "--dest", dest, "--url", srv.URL}

	out, err := run(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Completed with failures: 0 written, 1 failed")
	assert.NoFileExists(t, dest)

	_, err = run(t, append(args, "--strict")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchFlagValidation(t *testing.T) {
	_, err := run(t, "fetch", "--src", "fonts/*.ttf")
	assert.EqualError(t, err, "--src and --dest must be given together")

	_, err = run(t, "fetch")
	assert.Error(t, err)
}

func TestQuery(t *testing.T) {
	fonts := writeFonts(t, "Roboto-Bold.ttf", "Roboto-LightItalic.ttf", "OpenSans.ttf", "bad name.ttf")
	dest := t.TempDir() + "/"

	out, err := run(t, "query", "--src", filepath.Join(fonts, "*.ttf"), "--dest", dest, "--url", "http://fonts.test/css")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines, "http://fonts.test/css?family=Open+Sans -> "+dest+"OpenSans.css")
	assert.Contains(t, lines, "http://fonts.test/css?family=Roboto:700,300i -> "+dest+"Roboto.css")
	assert.True(t, strings.HasPrefix(lines[2], "- skipped: "))
}

func TestFetchWritesMetrics(t *testing.T) {
	srv := newFontServer(t)
	fonts := writeFonts(t, "Roboto-Bold.ttf")
	dir := t.TempDir()
	metrics := filepath.Join(dir, "textfile", "fontface.prom")

	config := filepath.Join(dir, "fontface.yaml")
	require.NoError(t, os.WriteFile(config, []byte(fmt.Sprintf(`Url: %s
Jobs:
  - Src: [%q]
    Dest: %s
Metrics:
  TextFile: %s
`, srv.URL, filepath.Join(fonts, "*.ttf"), filepath.Join(dir, "font.css"), metrics)), 0644))

	out, err := run(t, "fetch", "-f", config, "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed: 1 written")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `fontface_fetch_requests_total{result="ok"}`)
}
