package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coopebred/registro-socios/internal/config"
	"github.com/coopebred/registro-socios/internal/database"
	"github.com/coopebred/registro-socios/internal/repository"
	"github.com/coopebred/registro-socios/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Store: config.StoreConfig{Driver: config.DriverREST},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{config.DefaultAllowedOrigin},
			AllowedMethods: []string{"GET", "POST"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         86400,
		},
	}
}

func do(t *testing.T, server *httptest.Server, method, path, body string, headers map[string]string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func TestRouter_Routes(t *testing.T) {
	store := testutil.NewMockStore()
	server := httptest.NewServer(NewRouter(store, testConfig()))
	defer server.Close()

	t.Run("root", func(t *testing.T) {
		resp, body := do(t, server, http.MethodGet, "/", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Backend funcionando", body)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})

	t.Run("health", func(t *testing.T) {
		resp, _ := do(t, server, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("registration endpoints", func(t *testing.T) {
		individual := `{"nombres":"Ana","apellidos":"Pérez","cedula":"001","telefono":"809","email":"a@x.com"}`
		resp, body := do(t, server, http.MethodPost, "/registrar-socio-individual", individual, map[string]string{"Content-Type": "application/json"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"message":"Socio registrado correctamente"}`, body)

		resp, body = do(t, server, http.MethodPost, "/registrar-socio-individual", individual, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `{"error":"La cédula ya está registrada en el sistema."}`, body)

		resp, body = do(t, server, http.MethodPost, "/registrar-socio-empresa", `{}`, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"message":"Socio empresa registrado correctamente"}`, body)
	})

	t.Run("unknown route and wrong method", func(t *testing.T) {
		resp, _ := do(t, server, http.MethodGet, "/socios", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, _ = do(t, server, http.MethodGet, "/registrar-socio-empresa", "", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("preflight is answered by CORS middleware", func(t *testing.T) {
		resp, _ := do(t, server, http.MethodOptions, "/registrar-socio-individual", "", map[string]string{
			"Origin":                        config.DefaultAllowedOrigin,
			"Access-Control-Request-Method": "POST",
		})
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, config.DefaultAllowedOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET,POST", resp.Header.Get("Access-Control-Allow-Methods"))
	})

	t.Run("foreign origin gets no CORS header", func(t *testing.T) {
		resp, _ := do(t, server, http.MethodGet, "/", "", map[string]string{"Origin": "https://evil.example"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_StorePanicDoesNotCrash(t *testing.T) {
	store := testutil.NewMockStore()
	store.FindPanic = "nil pointer in store client"
	server := httptest.NewServer(NewRouter(store, testConfig()))
	defer server.Close()

	individual := `{"nombres":"Ana","apellidos":"Pérez","cedula":"001","telefono":"809","email":"a@x.com"}`
	resp, body := do(t, server, http.MethodPost, "/registrar-socio-individual", individual, nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Equal(t, "nil pointer in store client", payload["error"])

	resp, _ = do(t, server, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_WithSQLiteStore(t *testing.T) {
	db, err := database.Connect(config.StoreConfig{
		Driver:       config.DriverSQLite,
		SQLitePath:   ":memory:",
		RunMigration: true,
	})
	require.NoError(t, err)
	defer database.Close(db)

	cfg := testConfig()
	cfg.Store.Driver = config.DriverSQLite
	server := httptest.NewServer(NewRouter(repository.NewGormStore(db), cfg))
	defer server.Close()

	individual := `{"nombres":"Ana","apellidos":"Pérez","cedula":"001","telefono":"809","email":"a@x.com","pais":"RD"}`
	resp, _ := do(t, server, http.MethodPost, "/registrar-socio-individual", individual, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, server, http.MethodPost, "/registrar-socio-individual", individual, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, server, http.MethodPost, "/registrar-socio-empresa", `{"razon_social_empresa":"Acme SRL"}`, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Table("SocioIndividual").Where("cedula = ?", "001").Count(&count).Error)
	assert.Equal(t, int64(1), count)
	require.NoError(t, db.Table("SocioEmpresa").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	resp, _ = do(t, server, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
