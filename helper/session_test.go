package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinema_console/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(ttl).Unix()}).
		SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

func TestPopFlashClears(t *testing.T) {
	s := &Session{}
	s.AddFlash(model.ToastError, "a")
	s.AddFlash(model.ToastSuccess, "b")
	assert.Len(t, s.PopFlash(), 2)
	assert.Empty(t, s.PopFlash())
}

func sessionApp(t *testing.T, sessions *Sessions, token string) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/login", func(c *fiber.Ctx) error {
		s, err := sessions.Load(c)
		if err != nil {
			return err
		}
		s.User = &model.UserAuthenticate{EmployeeNo: "E02", Token: token}
		s.SetOld(map[string]string{"name": "Dune"})
		return sessions.Save(s)
	})
	app.Get("/me", func(c *fiber.Ctx) error {
		s, err := sessions.Load(c)
		if err != nil {
			return err
		}
		if !s.Authenticated() {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(s.User.EmployeeNo + " " + s.Old["name"])
	})
	app.Get("/anonymous", func(c *fiber.Ctx) error {
		s, err := sessions.Load(c)
		if err != nil {
			return err
		}
		return sessions.Persist(s)
	})
	return app
}

func TestSessionsRoundTripThroughCookie(t *testing.T) {
	app := sessionApp(t, NewSessions(nil, time.Hour, false), signedToken(t, 30*time.Minute))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, "/", cookies[0].Path)
	assert.InDelta(t, (30 * time.Minute).Seconds(), cookies[0].MaxAge, 5)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookies[0])
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "E02 Dune", string(body[:n]))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSessionLifetimeCappedByMaxTTL(t *testing.T) {
	app := sessionApp(t, NewSessions(nil, 10*time.Minute, true), signedToken(t, 8*time.Hour))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	require.Len(t, resp.Cookies(), 1)
	assert.InDelta(t, (10 * time.Minute).Seconds(), resp.Cookies()[0].MaxAge, 5)
	assert.True(t, resp.Cookies()[0].Secure)
}

func TestEmptyAnonymousSessionIsNotStored(t *testing.T) {
	app := sessionApp(t, NewSessions(nil, time.Hour, false), "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/anonymous", nil))
	require.NoError(t, err)
	assert.Empty(t, resp.Cookies())
}

func TestSaveRejectsExpiredSession(t *testing.T) {
	sessions := NewSessions(nil, time.Hour, false)
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		s, err := sessions.Load(c)
		require.NoError(t, err)
		s.User = &model.UserAuthenticate{EmployeeNo: "E02", Token: "opaque"}
		s.ExpiresAt = time.Now().Add(-time.Minute)
		assert.ErrorIs(t, sessions.Save(s), ErrSessionExpired)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
