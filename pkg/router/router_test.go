package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body))
	}
}

func TestGroupPrefixing(t *testing.T) {
	r := New()
	api := r.Group("/api")
	products := api.Group("/products")
	products.Get("", "products.index", okHandler("list"))
	products.Get("/{id}", "products.show", okHandler("show"))

	rr := httptest.NewRecorder()
	r.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "list", rr.Body.String())

	rr = httptest.NewRecorder()
	r.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/products/abc", nil))
	assert.Equal(t, "show", rr.Body.String())
}

func TestNamedRouteURL(t *testing.T) {
	r := New()
	r.Get("/api/products/{id}", "products.show", okHandler(""))

	url, err := r.URL("products.show", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/api/products/42", url)

	_, err = r.URL("products.show", nil)
	assert.Error(t, err, "missing params must not build a URL")

	_, err = r.URL("does.not.exist", nil)
	assert.Error(t, err)
}

func TestGroupMiddlewareApplies(t *testing.T) {
	var hits []string
	mw := func(tag string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				hits = append(hits, tag)
				next.ServeHTTP(w, req)
			})
		}
	}

	r := New()
	g := r.Group("/api", mw("group"))
	g.Get("/ping", "ping", okHandler("pong"), mw("route"))

	rr := httptest.NewRecorder()
	r.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, []string{"group", "route"}, hits, "group middleware runs before route middleware")
	assert.Equal(t, "pong", rr.Body.String())
}

func TestRoutesListing(t *testing.T) {
	r := New()
	r.Get("/b", "b.index", okHandler(""))
	r.Post("/a", "a.store", okHandler(""))

	infos := r.Routes()
	require.Len(t, infos, 2)
	assert.Equal(t, "/a", infos[0].Path, "listing is sorted by path")
	assert.Equal(t, http.MethodPost, infos[0].Method)
}

func TestMethodNotAllowed(t *testing.T) {
	r := New()
	r.Get("/api/products", "products.index", okHandler(""))

	rr := httptest.NewRecorder()
	r.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/products", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
