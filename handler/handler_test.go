package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"cinema_console/client"
	"cinema_console/constants"
	"cinema_console/handler"
	"cinema_console/helper"
	"cinema_console/model"
	"cinema_console/router"
	"cinema_console/views"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csrfCookie = "csrf_"

// backend is a fake cinema API that records every call it receives.
type backend struct {
	mu     sync.Mutex
	calls  []string
	bodies map[string]string
	routes map[string]http.HandlerFunc
}

func (b *backend) handle(route string, fn http.HandlerFunc) {
	b.routes[route] = fn
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	body, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	b.calls = append(b.calls, key)
	b.bodies[key] = string(body)
	fn, ok := b.routes[key]
	b.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"succeeded": false, "messages": []string{"not found: " + key}})
		return
	}
	fn(w, r)
}

func (b *backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func (b *backend) Body(key string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func ok(data any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"succeeded": true, "data": data})
	}
}

func page(data any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"succeeded": true, "data": data, "currentPage": 1, "totalPages": 1,
			"totalCount": 1, "pageSize": 10, "hasPreviousPage": false, "hasNextPage": false,
		})
	}
}

func failWith(status int, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status, map[string]any{"succeeded": false, "messages": []string{message}})
	}
}

type recordingAudit struct {
	mu      sync.Mutex
	entries []model.AuditEntry
}

func (a *recordingAudit) Record(_ context.Context, e model.AuditEntry) {
	a.mu.Lock()
	a.entries = append(a.entries, e)
	a.mu.Unlock()
}

func (a *recordingAudit) Recent(_ context.Context, limit int) ([]model.AuditEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.entries) < limit {
		limit = len(a.entries)
	}
	return append([]model.AuditEntry(nil), a.entries[:limit]...), nil
}

func (a *recordingAudit) Enabled() bool { return true }

type testEnv struct {
	app     *fiber.App
	api     *backend
	handler *handler.Handler
	jar     map[string]*http.Cookie
}

func token(t *testing.T) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return tok
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	api := &backend{bodies: map[string]string{}, routes: map[string]http.HandlerFunc{}}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	log := zerolog.Nop()
	h := handler.New(client.New(client.Options{
		BaseURL:     srv.URL + "/api/v1",
		IdentityURL: srv.URL + "/api",
		Logger:      log,
	}), log)
	app := fiber.New(fiber.Config{Views: views.New(), ErrorHandler: handler.ErrorHandler(log)})
	router.SetupRoutes(app, h, helper.NewSessions(nil, 2*time.Hour, false), nil, log)

	// the session and csrf middleware run for these too
	user := model.UserAuthenticate{UserId: 5, EmployeeNo: "E005", Role: "Admin", Token: token(t)}
	app.Get("/test/login", func(c *fiber.Ctx) error {
		s := helper.CurrentSession(c)
		u := user
		s.User = &u
		s.Rotate()
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/test/session", func(c *fiber.Ctx) error {
		return c.JSON(helper.CurrentSession(c))
	})
	return &testEnv{app: app, api: api, handler: h, jar: map[string]*http.Cookie{}}
}

// login gives the jar an authenticated session for employee E005.
func (e *testEnv) login(t *testing.T) {
	t.Helper()
	resp := e.do(t, http.MethodGet, "/test/login", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

// send runs req with the jar's cookies and keeps the cookies it sets.
func (e *testEnv) send(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	for _, ck := range e.jar {
		req.AddCookie(ck)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	for _, ck := range resp.Cookies() {
		if ck.Value == "" || ck.MaxAge < 0 {
			delete(e.jar, ck.Name)
			continue
		}
		e.jar[ck.Name] = &http.Cookie{Name: ck.Name, Value: ck.Value}
	}
	return resp
}

// csrf returns the form token, fetching one first if the jar has none.
func (e *testEnv) csrf(t *testing.T) string {
	t.Helper()
	if ck, ok := e.jar[csrfCookie]; ok {
		return ck.Value
	}
	e.send(t, httptest.NewRequest(http.MethodGet, "/", nil))
	ck, ok := e.jar[csrfCookie]
	require.True(t, ok, "no csrf cookie issued")
	return ck.Value
}

func (e *testEnv) do(t *testing.T, method, path string, form url.Values) *http.Response {
	t.Helper()
	if method == http.MethodPost {
		if form == nil {
			form = url.Values{}
		}
		form.Set("_csrf", e.csrf(t))
	}
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return e.send(t, req)
}

// upload posts a multipart form; files maps a field to file names with
// their content.
func (e *testEnv) upload(t *testing.T, path string, fields url.Values, files map[string][][2]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("_csrf", e.csrf(t)))
	for k, vals := range fields {
		for _, v := range vals {
			require.NoError(t, w.WriteField(k, v))
		}
	}
	for field, list := range files {
		for _, f := range list {
			part, err := w.CreateFormFile(field, f[0])
			require.NoError(t, err)
			_, err = part.Write([]byte(f[1]))
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return e.send(t, req)
}

// session returns what the jar's session cookie currently holds.
func (e *testEnv) session(t *testing.T) *helper.Session {
	t.Helper()
	resp := e.send(t, httptest.NewRequest(http.MethodGet, "/test/session", nil))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var s helper.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	return &s
}

func toasts(s *helper.Session) []string {
	var out []string
	for _, f := range s.Flash {
		out = append(out, f.Message)
	}
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func employeeForm() url.Values {
	return url.Values{
		"name":        {"Lan Nguyen"},
		"address":     {"12 Le Loi"},
		"email":       {"lan@example.com"},
		"username":    {"lan"},
		"password":    {"secret123"},
		"phoneNumber": {"0901234567"},
		"birthday":    {"1999-05-01"},
		"gender":      {"true"},
	}
}

func TestCreateEmployeeIncompleteFormNeverCallsAPI(t *testing.T) {
	env := newEnv(t)
	env.login(t)

	form := employeeForm()
	form.Set("address", " ")
	resp := env.do(t, http.MethodPost, "/manage/employee", form)

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/manage/employee/new", resp.Header.Get("Location"))
	s := env.session(t)
	assert.Equal(t, []string{constants.FILL_ALL_FIELDS}, toasts(s))
	assert.Equal(t, "Lan Nguyen", s.Old["name"])
	assert.NotContains(t, s.Old, "password")
	assert.Empty(t, env.api.Calls())
}

func TestCreateEmployeeShortPassword(t *testing.T) {
	env := newEnv(t)
	env.login(t)

	form := employeeForm()
	form.Set("password", "short")
	_ = env.do(t, http.MethodPost, "/manage/employee", form)

	assert.Equal(t, []string{constants.PASSWORD_TOO_SHORT}, toasts(env.session(t)))
	assert.Empty(t, env.api.Calls())
}

func TestCreateEmployee(t *testing.T) {
	env := newEnv(t)
	env.login(t)
	env.api.handle("POST /api/v1/employee", ok(nil))

	resp := env.do(t, http.MethodPost, "/manage/employee", employeeForm())

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/manage/employee", resp.Header.Get("Location"))
	assert.Equal(t, []string{"Add employee successfully"}, toasts(env.session(t)))

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.api.Body("POST /api/v1/employee")), &sent))
	assert.Equal(t, "lan", sent["username"])
	assert.Equal(t, "1999-05-01", sent["birthday"])
}

func TestLogin(t *testing.T) {
	tok := token(t)
	tests := []struct {
		name     string
		reply    http.HandlerFunc
		location string
		toast    string
		loggedIn bool
	}{
		{
			name:     "employee",
			reply:    ok(map[string]any{"userId": 1, "employeeNo": "E001", "role": "Admin", "token": tok}),
			location: "/manage/dashboard",
			toast:    constants.LOGIN_SUCCESS,
			loggedIn: true,
		},
		{
			name:     "wrong credentials",
			reply:    failWith(http.StatusBadRequest, "Incorrect username or password"),
			location: "/login",
			toast:    "Incorrect username or password",
		},
		{
			name:     "customer",
			reply:    ok(map[string]any{"userId": 2, "employeeNo": "C002", "role": "Customer", "token": tok}),
			location: "/login",
			toast:    constants.ONLY_CUSTOMER,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(t)
			env.api.handle("POST /api/identity/token", tt.reply)

			resp := env.do(t, http.MethodPost, "/login", url.Values{"employeeNo": {"E001"}, "password": {"pw"}})

			assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, tt.location, resp.Header.Get("Location"))
			s := env.session(t)
			assert.Equal(t, []string{tt.toast}, toasts(s))
			assert.Equal(t, tt.loggedIn, s.Authenticated())
		})
	}
}

func TestLoginBlankFields(t *testing.T) {
	env := newEnv(t)
	_ = env.do(t, http.MethodPost, "/login", url.Values{"employeeNo": {""}, "password": {"pw"}})

	assert.Equal(t, []string{constants.FILL_ALL_FIELDS}, toasts(env.session(t)))
	assert.Empty(t, env.api.Calls())
}

func TestEditCinema(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		env := newEnv(t)
		env.login(t)

		resp := env.do(t, http.MethodPost, "/manage/cinema/3", url.Values{
			"name": {""}, "description": {"d"}, "city": {"HCM"},
		})

		assert.Equal(t, "/manage/cinema/3/edit", resp.Header.Get("Location"))
		assert.Equal(t, []string{constants.FILL_ALL_FIELDS}, toasts(env.session(t)))
		assert.Empty(t, env.api.Calls())
	})

	t.Run("saved", func(t *testing.T) {
		env := newEnv(t)
		env.login(t)
		env.api.handle("GET /api/v1/cinema/3", ok(map[string]any{"id": 3, "name": "Old", "images": []string{"cinema/a.png"}}))
		env.api.handle("PUT /api/v1/cinema", ok(nil))

		resp := env.do(t, http.MethodPost, "/manage/cinema/3", url.Values{
			"name": {"Galaxy Nguyen Du"}, "description": {"d"}, "city": {"HCM"},
			"address": {"116 Nguyen Du"}, "latitude": {"10.77"}, "longitude": {"106.69"},
		})

		assert.Equal(t, "/manage/cinema", resp.Header.Get("Location"))
		assert.Equal(t, []string{"Edit cinema successfully"}, toasts(env.session(t)))

		var sent map[string]any
		require.NoError(t, json.Unmarshal([]byte(env.api.Body("PUT /api/v1/cinema")), &sent))
		assert.EqualValues(t, 3, sent["id"])
		assert.Equal(t, []any{"cinema/a.png"}, sent["images"])
	})
}

func TestUnauthorizedAPIEndsSession(t *testing.T) {
	env := newEnv(t)
	env.login(t)
	before := *env.jar[helper.SessionCookie]
	env.api.handle("GET /api/v1/film", failWith(http.StatusUnauthorized, "token expired"))

	resp := env.do(t, http.MethodGet, "/manage/film", nil)

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	s := env.session(t)
	assert.False(t, s.Authenticated())
	assert.Equal(t, []string{constants.SESSION_EXPIRED}, toasts(s))
	assert.NotEqual(t, before.Value, env.jar[helper.SessionCookie].Value)

	// the old cookie no longer opens the console
	env.jar[helper.SessionCookie] = &before
	resp = env.do(t, http.MethodGet, "/manage/category", nil)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestPostWithoutCSRFTokenIsRejected(t *testing.T) {
	env := newEnv(t)
	env.login(t)
	env.api.handle("POST /api/v1/category", ok(nil))
	env.csrf(t)

	for name, form := range map[string]url.Values{
		"missing": {"name": {"Drama"}},
		"forged":  {"name": {"Drama"}, "_csrf": {"not-the-token"}},
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/manage/category", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			resp := env.send(t, req)
			assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		})
	}
	assert.Empty(t, env.api.Calls())

	resp := env.do(t, http.MethodPost, "/manage/category", url.Values{"name": {"Drama"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, []string{"POST /api/v1/category"}, env.api.Calls())
}

func TestFormsCarryCSRFToken(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, http.MethodGet, "/login", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `name="_csrf" value="`+env.jar[csrfCookie].Value+`"`)
}

func TestAnonymousRedirectsToLogin(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, http.MethodGet, "/manage/category", nil)

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestListCategories(t *testing.T) {
	env := newEnv(t)
	env.login(t)
	var query url.Values
	env.api.handle("GET /api/v1/category", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		page([]map[string]any{{"id": 4, "name": "Drama"}})(w, r)
	})

	resp := env.do(t, http.MethodGet, "/manage/category?q=dra&page=1", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Drama")
	assert.Contains(t, body, "/manage/category/4/edit")
	assert.Equal(t, "dra", query.Get("Keyword"))
	assert.Equal(t, "1", query.Get("PageNumber"))
}

func TestListShowsAPIErrorAsToast(t *testing.T) {
	env := newEnv(t)
	env.login(t)
	env.api.handle("GET /api/v1/category", failWith(http.StatusInternalServerError, "database offline"))

	resp := env.do(t, http.MethodGet, "/manage/category", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "database offline")
	assert.Contains(t, body, "No categories")
}

func scheduleWithSeats() http.HandlerFunc {
	return ok(map[string]any{
		"id": 9, "film": "Dune", "room": "R1", "price": 90000,
		"scheduleSeats": []map[string]any{
			{"id": 1, "numberSeat": 1, "seatCode": "A1", "status": 1},
			{"id": 2, "numberSeat": 2, "seatCode": "A2", "status": 2},
			{"id": 3, "numberSeat": 3, "seatCode": "B1", "status": 1},
		},
	})
}

func TestReserve(t *testing.T) {
	env := newEnv(t)
	env.login(t)
	audit := &recordingAudit{}
	env.handler.Audit = audit
	env.api.handle("GET /api/v1/schedule/9", scheduleWithSeats())
	env.api.handle("POST /api/v1/reserve", ok(nil))
	env.api.handle("POST /api/v1/booking", ok(map[string]any{"id": 42}))
	env.api.handle("PATCH /api/v1/booking/update-status", ok(nil))

	resp := env.do(t, http.MethodPost, "/manage/schedule/9/reserve", url.Values{"seats": {"1", "3"}})

	assert.Equal(t, "/manage/schedule/9", resp.Header.Get("Location"))
	assert.Equal(t, []string{constants.RESERVE_SUCCESS}, toasts(env.session(t)))
	assert.Equal(t, []string{
		"GET /api/v1/schedule/9",
		"POST /api/v1/reserve",
		"POST /api/v1/booking",
		"PATCH /api/v1/booking/update-status",
	}, env.api.Calls())

	var reserve, booking, status map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.api.Body("POST /api/v1/reserve")), &reserve))
	require.NoError(t, json.Unmarshal([]byte(env.api.Body("POST /api/v1/booking")), &booking))
	require.NoError(t, json.Unmarshal([]byte(env.api.Body("PATCH /api/v1/booking/update-status")), &status))
	assert.Equal(t, []any{1.0, 3.0}, reserve["numberSeats"])
	assert.NotContains(t, reserve, "paymentDestinationId")
	assert.Equal(t, model.PaymentDestinationVNPay, booking["paymentDestinationId"])
	assert.EqualValues(t, 5, booking["customerId"])
	assert.EqualValues(t, 42, status["id"])
	assert.EqualValues(t, 3, status["bookingStatus"])

	require.Len(t, audit.entries, 1)
	assert.Equal(t, helper.ActionReserve, audit.entries[0].Action)
	assert.True(t, audit.entries[0].Succeeded)
	assert.Equal(t, "E005", audit.entries[0].Actor)
}

func TestReserveTakenSeat(t *testing.T) {
	env := newEnv(t)
	env.login(t)
	env.api.handle("GET /api/v1/schedule/9", scheduleWithSeats())

	_ = env.do(t, http.MethodPost, "/manage/schedule/9/reserve", url.Values{"seats": {"1", "2"}})

	assert.Equal(t, []string{"Seat A2 is no longer available"}, toasts(env.session(t)))
	assert.Equal(t, []string{"GET /api/v1/schedule/9"}, env.api.Calls())
}

func TestReserveNothingSelected(t *testing.T) {
	env := newEnv(t)
	env.login(t)

	_ = env.do(t, http.MethodPost, "/manage/schedule/9/reserve", url.Values{})

	assert.Equal(t, []string{constants.SELECT_AT_LEAST_ONE}, toasts(env.session(t)))
	assert.Empty(t, env.api.Calls())
}

func TestDashboardWidgetFailure(t *testing.T) {
	env := newEnv(t)
	env.login(t)
	env.api.handle("GET /api/v1/statistics/overview", failWith(http.StatusInternalServerError, "overview down"))
	env.api.handle("GET /api/v1/statistics/time-step", ok([]map[string]any{
		{"label": "Today", "totalRevenue": 200}, {"label": "Yesterday", "totalRevenue": 100},
	}))
	env.api.handle("GET /api/v1/statistics/film", ok([]map[string]any{{"id": 1, "name": "Dune", "totalRevenue": 300}}))
	env.api.handle("GET /api/v1/statistics/cinema", ok([]map[string]any{}))
	env.api.handle("GET /api/v1/cinema", page([]map[string]any{{"id": 1, "name": "Galaxy"}}))

	resp := env.do(t, http.MethodGet, "/manage/dashboard", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "overview down")
	assert.Contains(t, body, "Dune")
}

func TestDashboardDataUnauthorized(t *testing.T) {
	env := newEnv(t)
	env.login(t)
	unauthorized := failWith(http.StatusUnauthorized, "expired")
	for _, p := range []string{"overview", "time-step", "film", "cinema"} {
		env.api.handle("GET /api/v1/statistics/"+p, unauthorized)
	}
	env.api.handle("GET /api/v1/cinema", unauthorized)

	resp := env.do(t, http.MethodGet, "/manage/dashboard/data", nil)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestExportFilms(t *testing.T) {
	env := newEnv(t)
	env.login(t)
	env.api.handle("GET /api/v1/film", page([]map[string]any{{"id": 1, "name": "Dune", "duration": 155}}))

	resp := env.do(t, http.MethodGet, "/manage/film/export", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
	body := readBody(t, resp)
	assert.True(t, strings.HasPrefix(body, "PK"), "xlsx is a zip archive")
}

func TestAuditTrailDisabled(t *testing.T) {
	env := newEnv(t)
	env.login(t)

	resp := env.do(t, http.MethodGet, "/manage/audit", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), constants.AUDIT_DISABLED)
}

func TestBookingQR(t *testing.T) {
	env := newEnv(t)
	env.login(t)
	env.api.handle("GET /api/v1/booking/42", ok(map[string]any{"id": 42, "bookingRefId": "BK-42"}))

	resp := env.do(t, http.MethodGet, "/manage/booking/42/qr", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(readBody(t, resp), "\x89PNG"))
}

func TestHealthz(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
