package proxy

import (
	"io"
	"net/http"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo sends five requests through the proxy; the third status check is throttled.
func Demo(w io.Writer) error {
	out := transcript.New(w)

	nginx := NewNginxServer(Application{}, DefaultMaxRequests)
	requests := []struct{ url, method string }{
		{"/app/status", http.MethodGet},
		{"/app/status", http.MethodGet},
		{"/app/status", http.MethodGet},
		{"/create/user", http.MethodPost},
		{"/create/user", http.MethodGet},
	}
	for _, r := range requests {
		code, body := nginx.HandleRequest(r.url, r.method)
		out.Printf("Url: %s HttpCode: %d Body: %s\n", r.url, code, body)
	}

	return out.Err()
}
