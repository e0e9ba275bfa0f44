package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<html>
<head><title>Job</title><style>body { color: red; }</style></head>
<body>
  <nav>Home | Jobs | About</nav>
  <main>
    <h1>Senior Go Engineer</h1>
    <p>We are looking for a backend   engineer with Go experience.</p>
  </main>
  <footer>© Acme Corp</footer>
</body>
</html>`

func TestJobDescription_ExtractsMainContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer srv.Close()

	text, err := JobDescription(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "backend engineer with Go experience")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Acme Corp", "footer noise removed")
	assert.NotContains(t, text, "color: red")
}

func TestJobDescription_FallsBackToBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Plain posting text</p></body></html>`))
	}))
	defer srv.Close()

	text, err := JobDescription(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text", text)
}

func TestJobDescription_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobDescription(context.Background(), srv.URL)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestJobDescription_InvalidURL(t *testing.T) {
	_, err := JobDescription(context.Background(), "not-a-url")
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
}

func TestCleanWhitespace(t *testing.T) {
	input := "Line   one\t\n\n\n\n  Line two  "
	assert.Equal(t, "Line one\n\nLine two", cleanWhitespace(input))
}
