package sunat_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Registro-api/internal/domain"
	"github.com/jhoicas/Registro-api/internal/infrastructure/sunat"
)

// fakeApiPeru levanta un servidor httptest que responde como ApiPeru.
func fakeApiPeru(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestLookup_EmpresaActivaHabida(t *testing.T) {
	srv := fakeApiPeru(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ruc", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "20123456789", body["ruc"])

		w.Header().Set("Content-Type", "application/json")
		// Campos extra (ubigeo) deben tolerarse sin error.
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"ruc": "20123456789",
				"nombre_o_razon_social": "ACME PERU S.A.C.",
				"nombre_comercial": "ACME",
				"estado": "ACTIVO",
				"condicion": "HABIDO",
				"direccion": "AV. AREQUIPA 1234",
				"departamento": "LIMA",
				"provincia": "LIMA",
				"distrito": "MIRAFLORES",
				"ubigeo": ["150101"]
			}
		}`))
	})

	client := sunat.NewClient(srv.URL, "test-token")
	data, err := client.Lookup(context.Background(), "20123456789")
	require.NoError(t, err)

	assert.Equal(t, "20123456789", data.RUC)
	assert.Equal(t, "ACME PERU S.A.C.", data.RazonSocial)
	require.NotNil(t, data.NombreComercial)
	assert.Equal(t, "ACME", *data.NombreComercial)
	assert.Equal(t, "ACTIVO", data.Estado)
	assert.Equal(t, "HABIDO", data.Condicion)
	assert.True(t, data.IsActivaHabida())
}

func TestLookup_EmpresaSuspendida(t *testing.T) {
	srv := fakeApiPeru(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"ruc": "20999999999",
				"nombre_o_razon_social": "EMPRESA SUSPENDIDA S.A.",
				"estado": "SUSPENDIDO",
				"condicion": "HABIDO"
			}
		}`))
	})

	client := sunat.NewClient(srv.URL, "test-token")
	data, err := client.Lookup(context.Background(), "20999999999")
	require.NoError(t, err)
	assert.False(t, data.IsActivaHabida(), "SUSPENDIDO no es elegible aunque esté HABIDO")
}

func TestLookup_NoHabido(t *testing.T) {
	srv := fakeApiPeru(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"ruc": "20555555555",
				"nombre_o_razon_social": "EMPRESA NO UBICADA S.A.",
				"estado": "ACTIVO",
				"condicion": "NO HABIDO"
			}
		}`))
	})

	client := sunat.NewClient(srv.URL, "test-token")
	data, err := client.Lookup(context.Background(), "20555555555")
	require.NoError(t, err)
	assert.False(t, data.IsActivaHabida(), "NO HABIDO no es elegible aunque esté ACTIVO")
}

func TestLookup_RUCInexistente(t *testing.T) {
	srv := fakeApiPeru(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "message": "El número de RUC no existe."}`))
	})

	client := sunat.NewClient(srv.URL, "test-token")
	_, err := client.Lookup(context.Background(), "20111111111")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRUCValidation)
	assert.Contains(t, err.Error(), "no existe")
}

func TestLookup_FormatoInvalido(t *testing.T) {
	// No debe llegar a la red: el servidor fallaría el test si recibe algo.
	srv := fakeApiPeru(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no debe llamarse al servicio con un RUC malformado")
	})

	client := sunat.NewClient(srv.URL, "test-token")
	for _, bad := range []string{"", "123", "2012345678X", "99123456789"} {
		_, err := client.Lookup(context.Background(), bad)
		assert.ErrorIs(t, err, domain.ErrInvalidRUC, "ruc %q", bad)
	}
}

func TestLookup_ServicioNo2xx(t *testing.T) {
	srv := fakeApiPeru(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	client := sunat.NewClient(srv.URL, "test-token")
	_, err := client.Lookup(context.Background(), "20123456789")
	assert.ErrorIs(t, err, domain.ErrRUCValidation)
}

func TestLookup_ServicioInalcanzable(t *testing.T) {
	srv := fakeApiPeru(t, func(w http.ResponseWriter, r *http.Request) {})
	url := srv.URL
	srv.Close()

	client := sunat.NewClient(url, "test-token")
	_, err := client.Lookup(context.Background(), "20123456789")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRUCValidation)
	assert.False(t, errors.Is(err, domain.ErrInvalidRUC), "error de red no es error de formato")
}
