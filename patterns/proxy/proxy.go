package proxy

import "net/http"

// DefaultMaxRequests is how many requests per URL NginxServer forwards.
const DefaultMaxRequests = 2

// Server handles a request and returns a status code and body.
type Server interface {
	HandleRequest(url, method string) (int, string)
}

// Application is the real service.
type Application struct{}

// HandleRequest implements Server.
func (Application) HandleRequest(url, method string) (int, string) {
	switch {
	case url == "/app/status" && method == http.MethodGet:
		return http.StatusOK, "Ok"
	case url == "/create/user" && method == http.MethodPost:
		return http.StatusCreated, "User Created"
	default:
		return http.StatusNotFound, "Not Ok"
	}
}

// NginxServer is the proxy.
type NginxServer struct {
	app         Server
	maxRequests int
	seen        map[string]int
}

var _ Server = (*NginxServer)(nil)

// NewNginxServer returns a proxy in front of app that forwards at most
// maxRequests requests per URL. maxRequests <= 0 means DefaultMaxRequests.
func NewNginxServer(app Server, maxRequests int) *NginxServer {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	return &NginxServer{app: app, maxRequests: maxRequests, seen: map[string]int{}}
}

// allow counts a request for url and reports whether it is within the limit.
// The limit is per URL regardless of method.
func (n *NginxServer) allow(url string) bool {
	if n.seen[url] >= n.maxRequests {
		return false
	}
	n.seen[url]++
	return true
}

// HandleRequest implements Server.
func (n *NginxServer) HandleRequest(url, method string) (int, string) {
	if !n.allow(url) {
		return http.StatusForbidden, "Not Allowed"
	}
	return n.app.HandleRequest(url, method)
}
