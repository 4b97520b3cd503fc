package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/amirasaad/parcels/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// MakeRequestWithApp sends a request through app. A non-empty sessionID is
// sent as the session cookie.
func MakeRequestWithApp(app *fiber.App, method, path, body, sessionID string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: common.SessionCookieName, Value: sessionID})
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}

// SessionCookie returns the session cookie set by resp, if any.
func SessionCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == common.SessionCookieName {
			return c.Value
		}
	}
	return ""
}
