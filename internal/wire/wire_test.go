package wire

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"turf-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// emptyDB answers every read with no rows.
type emptyDB struct {
	pingErr error
}

func (d *emptyDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return &noRows{}, nil
}

func (d *emptyDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return noRow{}
}

func (d *emptyDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("UPDATE 0"), nil
}

func (d *emptyDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (d *emptyDB) Ping(ctx context.Context) error { return d.pingErr }

func (d *emptyDB) Close() {}

type noRow struct{}

func (noRow) Scan(dest ...any) error { return pgx.ErrNoRows }

type noRows struct{}

func (*noRows) Close() {}
func (*noRows) Err() error { return nil }
func (*noRows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT 0") }
func (*noRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (*noRows) Next() bool { return false }
func (*noRows) Scan(dest ...any) error { return pgx.ErrNoRows }
func (*noRows) Values() ([]any, error) { return nil, nil }
func (*noRows) RawValues() [][]byte { return nil }
func (*noRows) Conn() *pgx.Conn { return nil }

func newTestApp(t *testing.T, db *emptyDB) *App {
	t.Helper()
	config := &utils.Config{
		App: utils.AppConfig{
			RequestTimeout: 5 * time.Second,
			StorageTimeout: time.Second,
		},
		JWT: utils.JWTConfig{Secret: "wire-secret", Issuer: "turf-booking-test", ExpiryHours: 1},
	}

	app, err := Wiring(db, config, zap.NewNop())
	require.NoError(t, err)
	return app
}

func serve(app *App, method, path string) (*httptest.ResponseRecorder, utils.Response) {
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	var body utils.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestPublicRoutesReachHandlers(t *testing.T) {
	app := newTestApp(t, &emptyDB{})
	turfID := uuid.NewString()

	tests := []struct {
		path string
		code int
		kind string
	}{
		{"/api/turfs", http.StatusOK, ""},
		{"/api/games", http.StatusOK, ""},
		{"/api/games/" + uuid.NewString() + "/turfs", http.StatusOK, ""},
		{"/api/owners/" + uuid.NewString() + "/turfs", http.StatusOK, ""},
		{"/api/turfs/" + turfID, http.StatusNotFound, "not_found"},
		{"/api/turfs/" + turfID + "/bookings", http.StatusOK, ""},
		{"/api/turfs/not-a-uuid/bookings", http.StatusNotFound, "not_found"},
		{"/api/turfs/" + turfID + "/availability?date=2025-01-10", http.StatusNotFound, "not_found"},
		{"/api/turfs/" + turfID + "/availability", http.StatusBadRequest, "validation_error"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, body := serve(app, http.MethodGet, tt.path)
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.kind, body.Kind)
		})
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t, &emptyDB{})
	id := uuid.NewString()

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/logout"},
		{http.MethodGet, "/api/me"},
		{http.MethodGet, "/api/users/" + id + "/bookings"},
		{http.MethodPost, "/api/games"},
		{http.MethodPost, "/api/turfs"},
		{http.MethodPut, "/api/turfs/" + id},
		{http.MethodDelete, "/api/turfs/" + id},
		{http.MethodPost, "/api/bookings"},
		{http.MethodDelete, "/api/bookings/" + id},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec, _ := serve(app, route.method, route.path)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t, &emptyDB{})

	rec, _ := serve(app, http.MethodGet, "/api/tickets")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestHealth(t *testing.T) {
	rec, body := serve(newTestApp(t, &emptyDB{}), http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Status)

	rec, body = serve(newTestApp(t, &emptyDB{pingErr: errors.New("connection refused")}), http.MethodGet, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unavailable", body.Kind)
}
