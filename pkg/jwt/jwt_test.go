package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Registro-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "registro-api-test"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "20123456789", "empresa@example.com", testIssuer, 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "20123456789", claims.RUC)
	assert.Equal(t, "empresa@example.com", claims.Email)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "20123456789", "empresa@example.com", testIssuer, 24)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "firma con otro secret debe rechazarse")
}

func TestParse_TokenExpirado(t *testing.T) {
	// TTL 0: exp == iat, el token nace expirado.
	tok, err := pkgjwt.Generate(testSecret, "20123456789", "empresa@example.com", testIssuer, 0)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token con TTL 0 debe rechazarse inmediatamente")
}

func TestParse_TokenBasura(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "no.es.jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "20123456789", "empresa@example.com", testIssuer, 24)
	assert.Error(t, err)
}
