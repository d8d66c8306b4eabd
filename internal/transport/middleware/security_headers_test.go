package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/checkout-payments/internal/transport/middleware"
)

func TestMiddleware(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Transport Middleware Suite")
}

var _ = Describe("SecurityHeaders", func() {
	var (
		handler http.Handler
		rec     *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		handler = middleware.SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		rec = httptest.NewRecorder()
	})

	It("should set the full security header set on every response", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/config", nil)

		handler.ServeHTTP(rec, req)

		headers := rec.Header()
		Expect(headers.Get("X-Frame-Options")).To(Equal("DENY"))
		Expect(headers.Get("X-Content-Type-Options")).To(Equal("nosniff"))
		Expect(headers.Get("X-XSS-Protection")).To(Equal("1; mode=block"))
		Expect(headers.Get("Referrer-Policy")).To(Equal("no-referrer"))
		Expect(headers.Get("Permissions-Policy")).To(Equal("geolocation=(), microphone=(), camera=()"))
	})

	It("should allow the Stripe origins in the content security policy", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		handler.ServeHTTP(rec, req)

		csp := rec.Header().Get("Content-Security-Policy")
		Expect(csp).To(ContainSubstring("default-src 'self'"))
		Expect(csp).To(ContainSubstring("script-src 'self' https://js.stripe.com"))
		Expect(csp).To(ContainSubstring("connect-src 'self' https://api.stripe.com"))
		Expect(csp).To(ContainSubstring("frame-src https://js.stripe.com https://hooks.stripe.com"))
		Expect(csp).To(ContainSubstring("frame-ancestors 'none'"))
	})
})

var _ = Describe("CORS", func() {
	It("should short-circuit preflight requests", func() {
		called := false
		handler := middleware.CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest(http.MethodOptions, "/api/payments/create-intent", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusNoContent))
		Expect(called).To(BeFalse())
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
	})

	It("should pass normal requests through with CORS headers applied", func() {
		handler := middleware.CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusTeapot))
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
	})
})
