package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybank/easybank-services/internal/api"
	"github.com/easybank/easybank-services/internal/audit"
	"github.com/easybank/easybank-services/internal/config"
	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/events"
	"github.com/easybank/easybank-services/internal/mocks"
	"github.com/easybank/easybank-services/internal/service"
)

const testSecret = "an-accounts-test-secret-of-32-chars!"

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

type testEnv struct {
	handler   http.Handler
	customers *mocks.InMemoryCustomerStore
	accounts  *mocks.InMemoryAccountStore
	emitter   *mocks.MockEventEmitter
}

func newTestEnv(t *testing.T, auditCfg config.AuditConfig) *testEnv {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Service: config.ServiceAccounts,
		Server:  config.ServerConfig{RequestTimeoutSeconds: 5},
		Audit:   auditCfg,
		Build:   config.BuildConfig{Version: "1.0"},
		Docs:    config.DocsConfig{Title: "Accounts microservice REST API Documentation"},
	}

	env := &testEnv{
		customers: mocks.NewInMemoryCustomerStore(),
		accounts:  mocks.NewInMemoryAccountStore(),
		emitter:   &mocks.MockEventEmitter{},
	}

	numbers, err := domain.NewRandomNumberGenerator(domain.NumberRange{Min: 1_000_000_000, Span: 900_000_000})
	require.NoError(t, err)
	svc, err := service.NewAccountService(env.customers, env.accounts, &mocks.MockTransactor{}, numbers, env.emitter, 10, log)
	require.NoError(t, err)

	resolver, err := audit.NewResolver(auditCfg)
	require.NoError(t, err)

	env.handler = newRouter(cfg, log, svc, resolver, okPinger{})
	return env
}

func (e *testEnv) do(t *testing.T, method, target string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func TestAccountsRoutes_EndToEnd(t *testing.T) {
	env := newTestEnv(t, config.AuditConfig{SystemActor: "ACCOUNTS_MS"})
	jane := map[string]string{"name": "Jane", "email": "jane@x.com", "mobileNumber": "1112223333"}

	rec := env.do(t, http.MethodGet, "/api/fetch?mobileNumber=1112223333", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/create", jane, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"statusCode":"201","statusMsg":"Account created successfully"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-Id"))

	rec = env.do(t, http.MethodPost, "/api/create", jane, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/fetch?mobileNumber=1112223333", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched api.CustomerDto
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&fetched))
	assert.Equal(t, "Jane", fetched.Name)
	assert.Equal(t, "jane@x.com", fetched.Email)
	require.NotNil(t, fetched.AccountsDto)
	assert.Equal(t, "Savings", fetched.AccountsDto.AccountType)
	assert.Contains(t, fetched.AccountsDto.BranchAddress, "New York")

	emitted := env.emitter.Events()
	require.Len(t, emitted, 1)
	msg, err := emitted[0].AccountsMsg()
	require.NoError(t, err)
	assert.Equal(t, events.AccountsMsg{
		AccountNumber: fetched.AccountsDto.AccountNumber,
		Name:          "Jane",
		Email:         "jane@x.com",
		MobileNumber:  "1112223333",
	}, msg)

	rec = env.do(t, http.MethodDelete, "/api/delete?mobileNumber=1112223333", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/fetch?mobileNumber=1112223333", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/delete?mobileNumber=1112223333", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAccountsRoutes_UpdateUnknownAccountLeavesStoreUnchanged(t *testing.T) {
	env := newTestEnv(t, config.AuditConfig{SystemActor: "ACCOUNTS_MS"})

	rec := env.do(t, http.MethodPost, "/api/create",
		map[string]string{"name": "Jane", "email": "jane@x.com", "mobileNumber": "1112223333"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/update", map[string]interface{}{
		"name": "Someone Else", "email": "else@x.com", "mobileNumber": "1112223333",
		"accountsDto": map[string]interface{}{
			"accountNumber": 1999999999, "accountType": "Current", "branchAddress": "1 Elm Street, Boston",
		},
	}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/fetch?mobileNumber=1112223333", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched api.CustomerDto
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&fetched))
	assert.Equal(t, "Jane", fetched.Name)
	assert.Equal(t, "Savings", fetched.AccountsDto.AccountType)
}

func TestAccountsRoutes_ActorTokens(t *testing.T) {
	env := newTestEnv(t, config.AuditConfig{SystemActor: "ACCOUNTS_MS", JWTSecret: testSecret})

	token, err := audit.IssueToken(testSecret, "teller-7", time.Hour, time.Now())
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, "/api/create",
		map[string]string{"name": "Jane", "email": "jane@x.com", "mobileNumber": "1112223333"},
		http.Header{"Authorization": []string{"Bearer " + token}})
	require.Equal(t, http.StatusCreated, rec.Code)

	customer, err := env.customers.GetByMobileNumber(context.Background(), "1112223333")
	require.NoError(t, err)
	assert.Equal(t, "teller-7", customer.CreatedBy)

	rec = env.do(t, http.MethodPost, "/api/create",
		map[string]string{"name": "John", "email": "john@x.com", "mobileNumber": "1112224444"},
		http.Header{"Authorization": []string{"Bearer not-a-token"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, env.customers.Len())
}

func TestAccountsRoutes_InfoEndpoints(t *testing.T) {
	env := newTestEnv(t, config.AuditConfig{SystemActor: "ACCOUNTS_MS"})

	for _, target := range []string{"/api/contact-info", "/api/build-info", "/api/docs", "/health"} {
		rec := env.do(t, http.MethodGet, target, nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}

	rec := env.do(t, http.MethodGet, "/api/unknown", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
