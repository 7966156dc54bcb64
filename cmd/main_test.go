package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-notes/internal/config"
	"github.com/sbilibin2017/gw-notes/internal/jwt"
	"github.com/sbilibin2017/gw-notes/internal/repositories"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestNewKafkaWriter(t *testing.T) {
	cfg := &config.Config{KafkaBrokers: []string{"k1:9092"}, KafkaTopic: "note-events"}

	w := newKafkaWriter(cfg)

	assert.Equal(t, "note-events", w.Topic)
	assert.Equal(t, "k1:9092", w.Addr.String())
	assert.True(t, w.Async, "publishing must not block the request transaction")
	assert.LessOrEqual(t, w.BatchTimeout, 10*time.Millisecond)
	require.NotNil(t, w.Completion)
	assert.NotPanics(t, func() { w.Completion(nil, errors.New("broker unavailable")) })
}

func newMockRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock, *jwt.JWT) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tokens := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Minute))
	r := newRouter(sqlx.NewDb(db, "sqlmock"), tokens, nil, nil, prometheus.NewRegistry(), "localhost:8080")
	return r, mock, tokens
}

func TestRouter_Health(t *testing.T) {
	r, _, _ := newMockRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"Message":"Service running"}`, rr.Body.String())
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	r, mock, _ := newMockRouter(t)

	routes := []struct{ method, path string }{
		{http.MethodPost, "/users/logout"},
		{http.MethodGet, "/me/notes"},
		{http.MethodPost, "/me/notes"},
		{http.MethodGet, "/me/notes/" + uuid.NewString()},
		{http.MethodPut, "/me/notes/" + uuid.NewString()},
		{http.MethodDelete, "/me/notes/" + uuid.NewString()},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(route.method, route.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"detail":"Missing bearer token"}`, rr.Body.String())
		})
	}

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me/notes", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, rr.Body.String())
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, mock, _ := newMockRouter(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id, username, email, password)")).
			WithArgs(sqlmock.AnyArg(), "alice", "a@x.com", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/users/register",
			strings.NewReader(`{"username":"alice","email":"a@x.com","password":"pw1"}`)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"username":"alice"`)
		assert.NotContains(t, rr.Body.String(), "password")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate rolls back", func(t *testing.T) {
		r, mock, _ := newMockRouter(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id, username, email, password)")).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/users/register",
			strings.NewReader(`{"username":"alice","email":"a@x.com","password":"pw1"}`)))

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.JSONEq(t, `{"detail":"Username already exists"}`, rr.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRouter_LoginUnknownUser(t *testing.T) {
	r, mock, _ := newMockRouter(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password"}))
	mock.ExpectRollback()

	req := httptest.NewRequest(http.MethodPost, "/users/login", nil)
	req.SetBasicAuth("nobody", "pw")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"detail":"Bad credentials"}`, rr.Body.String())
	assert.Empty(t, rr.Header().Get("Authorization"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_Logout(t *testing.T) {
	r, mock, tokens := newMockRouter(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	token, err := tokens.Generate(context.Background(), uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/users/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Logout successful", rr.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_Metrics(t *testing.T) {
	r, _, _ := newMockRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `notes_http_requests_total{method="GET",route="/health",status="2xx"} 1`)
}

// ------------------ End-to-end scenario ------------------

func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { pgContainer.Terminate(ctx) })

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://user:password@%s:%d/testdb?sslmode=disable", pgHost, pgPort.Int())
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repositories.CreateSchema(ctx, db))
	return db
}

func TestRouter_AliceScenario(t *testing.T) {
	db := setupPostgres(t)

	tokens := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Minute))
	srv := httptest.NewServer(newRouter(db, tokens, nil, nil, prometheus.NewRegistry(), "localhost"))
	defer srv.Close()

	do := func(method, path, body string, setup func(*http.Request)) (*http.Response, string) {
		t.Helper()
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req, err := http.NewRequest(method, srv.URL+path, reader)
		require.NoError(t, err)
		if setup != nil {
			setup(req)
		}
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return resp, string(b)
	}

	resp, _ := do(http.MethodPost, "/users/register", `{"username":"alice","email":"a@x.com","password":"pw1"}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = do(http.MethodPost, "/users/register", `{"username":"alice","email":"a@x.com","password":"pw1"}`, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	_, wrongPw := do(http.MethodPost, "/users/login", "", func(r *http.Request) { r.SetBasicAuth("alice", "nope") })
	_, unknown := do(http.MethodPost, "/users/login", "", func(r *http.Request) { r.SetBasicAuth("bob", "pw1") })
	assert.Equal(t, wrongPw, unknown)

	resp, _ = do(http.MethodPost, "/users/login", "", func(r *http.Request) { r.SetBasicAuth("alice", "pw1") })
	require.Equal(t, http.StatusOK, resp.StatusCode)
	auth := resp.Header.Get("Authorization")
	require.True(t, strings.HasPrefix(auth, "Bearer "))
	withAuth := func(r *http.Request) { r.Header.Set("Authorization", auth) }

	resp, body := do(http.MethodPost, "/me/notes", `{"title":"T","content":"C"}`, withAuth)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"title":"T"`)
	assert.Contains(t, body, `"content":"C"`)
	id := regexp.MustCompile(`"id":"([0-9a-f-]{36})"`).FindStringSubmatch(body)[1]

	resp, _ = do(http.MethodPost, "/me/notes", `{"title":"T","content":"other"}`, withAuth)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, body = do(http.MethodGet, "/me/notes", "", withAuth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "All notes from alice")

	resp, body = do(http.MethodPut, "/me/notes/"+id, `{"title":"T2","content":"C2"}`, withAuth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"title":"T2"`)

	resp, body = do(http.MethodDelete, "/me/notes/"+id, "", withAuth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Note #`+id+` deleted"}`, body)

	resp, _ = do(http.MethodDelete, "/me/notes/"+id, "", withAuth)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(http.MethodGet, "/me/notes/"+id, "", withAuth)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
