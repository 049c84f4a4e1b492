package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxuryfaisal/QimmatAlaseel/pkg/jwt"
)

const secret = "clave-de-prueba"

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	in := jwt.Session{UserID: "u-1", Username: "faisal", Role: "admin"}

	token, err := jwt.Generate(secret, in, "qimmat-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	out, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParse_FirmaConOtroSecretoFalla(t *testing.T) {
	token, err := jwt.Generate(secret, jwt.Session{UserID: "u-1"}, "qimmat-test", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenExpiradoFalla(t *testing.T) {
	token, err := jwt.Generate(secret, jwt.Session{UserID: "u-1"}, "qimmat-test", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, token)
	assert.Error(t, err, "un token vencido nunca valida")
}

func TestParse_BasuraFalla(t *testing.T) {
	_, err := jwt.Parse(secret, "esto-no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretoVacioFalla(t *testing.T) {
	_, err := jwt.Generate("", jwt.Session{UserID: "u-1"}, "qimmat-test", 60)
	assert.Error(t, err)
}
