// Package auth emite los tokens de acceso para las escrituras de la API.
package auth

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// IssuedToken token emitido y los datos que lleva.
type IssuedToken struct {
	Token      string
	UserID     string
	Role       string
	ExpMinutes int
}

// TokenUseCase emite tokens firmados con el secret de la API. No hay registro de usuarios:
// quien tiene acceso a la configuración decide el rol de cada token.
type TokenUseCase struct {
	jwtCfg JWTConfig
}

// NewTokenUseCase construye el caso de uso.
func NewTokenUseCase(jwtCfg JWTConfig) *TokenUseCase {
	return &TokenUseCase{jwtCfg: jwtCfg}
}

// Issue genera un token para userID con el rol indicado. userID vacío genera un uuid.
// Sin secret configurado devuelve domain.ErrUnauthorized; un rol desconocido, domain.ErrInvalidInput.
func (uc *TokenUseCase) Issue(userID, role string) (*IssuedToken, error) {
	if uc.jwtCfg.Secret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET no configurado", domain.ErrUnauthorized)
	}
	role = strings.ToLower(strings.TrimSpace(role))
	if !slices.Contains([]string{jwt.RoleAdmin, jwt.RoleOperator, jwt.RoleViewer}, role) {
		return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, role)
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = uuid.New().String()
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, userID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &IssuedToken{Token: token, UserID: userID, Role: role, ExpMinutes: uc.jwtCfg.ExpMinutes}, nil
}
