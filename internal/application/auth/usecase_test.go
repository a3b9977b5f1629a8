package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/application/auth"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/pkg/jwt"
)

const secret = "secreto-de-prueba"

func TestIssue_TokenValidoConRol(t *testing.T) {
	uc := auth.NewTokenUseCase(auth.JWTConfig{Secret: secret, ExpMinutes: 15, Issuer: "inventory-tracker"})

	issued, err := uc.Issue("bodeguero-1", " Operator ")
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleOperator, issued.Role)

	claims, err := jwt.Parse(secret, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "bodeguero-1", claims.UserID)
	assert.Equal(t, jwt.RoleOperator, claims.Role)
	assert.Equal(t, "inventory-tracker", claims.Issuer)
}

func TestIssue_SinUsuarioGeneraUUID(t *testing.T) {
	uc := auth.NewTokenUseCase(auth.JWTConfig{Secret: secret, ExpMinutes: 5})
	issued, err := uc.Issue("", jwt.RoleViewer)
	require.NoError(t, err)
	assert.Len(t, issued.UserID, 36)
}

func TestIssue_Errores(t *testing.T) {
	_, err := auth.NewTokenUseCase(auth.JWTConfig{}).Issue("u", jwt.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = auth.NewTokenUseCase(auth.JWTConfig{Secret: secret}).Issue("u", "superuser")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
