package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func chatServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["message"] == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Failed to iterate with AI"}`))
			return
		}
		_, _ = w.Write([]byte(`{"content":"[` + body["lang"] + `] ` + body["message"] + `"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"server", "lang", "output"} {
		f := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, f, "--%s should be registered", name)
		assert.Equal(t, "string", f.Value.Type())
	}
	assert.Equal(t, defaultServer, cmd.PersistentFlags().Lookup("server").DefValue)
}

func TestChat_Argument(t *testing.T) {
	srv := chatServer(t)

	out, _, err := run(t, "", "chat", "--server", srv.URL, "--lang", "en", "What", "do", "you", "build?")

	require.NoError(t, err)
	assert.Equal(t, "[en] What do you build?\n", out)
}

func TestChat_ServerFromEnvironment(t *testing.T) {
	srv := chatServer(t)
	t.Setenv("SYNCTECH_SERVER", srv.URL)

	out, _, err := run(t, "", "chat", "olá")

	require.NoError(t, err)
	assert.Equal(t, "[pt] olá\n", out)
}

func TestChat_Stdin(t *testing.T) {
	srv := chatServer(t)

	out, errOut, err := run(t, "primeira\n\nfail\nsegunda\n", "chat", "--server", srv.URL)

	require.NoError(t, err)
	assert.Contains(t, out, "> primeira\n[pt] primeira\n")
	assert.Contains(t, out, "> segunda\n[pt] segunda\n")
	assert.NotContains(t, out, "> fail")
	assert.Contains(t, errOut, "server answered 500: Failed to iterate with AI")
}

func TestChat_ErrorIsReturned(t *testing.T) {
	srv := chatServer(t)

	_, _, err := run(t, "", "chat", "--server", srv.URL, "fail")

	require.Error(t, err)
	assert.Equal(t, "server answered 500: Failed to iterate with AI", err.Error())
}

func TestPostsList_Table(t *testing.T) {
	out, _, err := run(t, "", "posts", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "apps-mobile-flutter-angola")
	assert.Contains(t, out, "infraestrutura-cloud-pme")
	assert.Less(t, strings.Index(out, "apps-mobile-flutter-angola"), strings.Index(out, "automacao-ia-negocios"), "newest first")
}

func TestPostsList_JSON(t *testing.T) {
	out, _, err := run(t, "", "posts", "list", "-o", "json", "--category", "cloud")

	require.NoError(t, err)
	var rows []postRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "infraestrutura-cloud-pme", rows[0].Slug)
	assert.Equal(t, "Cloud", rows[0].Category)
}

func TestPostsList_YAML(t *testing.T) {
	out, _, err := run(t, "", "posts", "list", "--output", "yaml")

	require.NoError(t, err)
	var rows []postRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 3)
}

func TestPostsList_UnknownFormat(t *testing.T) {
	_, _, err := run(t, "", "posts", "list", "-o", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}

func TestPostsCheck(t *testing.T) {
	dir := t.TempDir()
	post := "---\nslug: ola\ntitle: Olá\ndate: 2025-05-01\n---\n\nCorpo.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ola.md"), []byte(post), 0o644))

	out, errOut, err := run(t, "", "posts", "check", "--dir", dir)

	require.NoError(t, err)
	assert.Equal(t, "1 posts OK\n", out)
	assert.Contains(t, errOut, "ola: no excerpt or seo.description")
	assert.Contains(t, errOut, "ola: no image")
}

func TestPostsCheck_InvalidPost(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.md"), []byte("no front matter"), 0o644))

	_, _, err := run(t, "", "posts", "check", "--dir", dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing front matter")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "Synctech CLI")
	assert.Contains(t, out, "Version:    dev")
}
