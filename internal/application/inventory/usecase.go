// Package inventory contiene los casos de uso del libro de movimientos:
// registrar, consultar y eliminar movimientos, y el arranque del almacenamiento.
package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/inventory-tracker/internal/application/ports"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
)

// RegisterMovementUseCase registra movimientos de forma transaccional: valida, asigna id y hora,
// agrega al libro y persiste. Un movimiento rechazado no modifica nada.
type RegisterMovementUseCase struct {
	txRunner     ports.TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	movementRepo repository.MovementRepository
	log          *logger.Logger
	clock        Clock
	strict       bool
}

// Option configura el caso de uso.
type Option func(*RegisterMovementUseCase)

// WithClock reemplaza la hora del sistema (tests, importaciones).
func WithClock(c Clock) Option {
	return func(uc *RegisterMovementUseCase) { uc.clock = c }
}

// WithStrictReferences exige que producto y ubicaciones existan al registrar.
func WithStrictReferences(strict bool) Option {
	return func(uc *RegisterMovementUseCase) { uc.strict = strict }
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner ports.TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
	log *logger.Logger,
	opts ...Option,
) *RegisterMovementUseCase {
	uc := &RegisterMovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		movementRepo: movementRepo,
		log:          log,
		clock:        SystemClock,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// MovementInput entrada para registrar un movimiento. Origen vacío = entrada, destino vacío = salida.
// UserID identifica a quien registra (token de la API); solo se usa en los logs.
type MovementInput struct {
	ProductID    string
	FromLocation string
	ToLocation   string
	Qty          int64
	UserID       string
}

// RegisterMovement valida la entrada y, si es aceptada, la agrega al libro dentro del TxRunner.
// El id es la hora de registro en milisegundos; si ya está ocupado se usa el máximo + 1.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (entity.Movement, error) {
	movement := entity.Movement{
		ProductID:    strings.TrimSpace(input.ProductID),
		FromLocation: strings.TrimSpace(input.FromLocation),
		ToLocation:   strings.TrimSpace(input.ToLocation),
		Qty:          input.Qty,
	}
	if err := inventory.ValidateMovement(movement); err != nil {
		uc.log.Warn().
			Str("code", inventory.RejectionCode(err)).
			Str("user_id", input.UserID).
			Str("product_id", movement.ProductID).
			Str("from", movement.FromLocation).
			Str("to", movement.ToLocation).
			Int64("qty", movement.Qty).
			Msg("movimiento rechazado")
		return entity.Movement{}, err
	}

	now := uc.clock().UTC().Truncate(time.Millisecond)
	movement.Timestamp = now

	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		locations repository.LocationRepository,
		movements repository.MovementRepository,
	) error {
		if uc.strict {
			if err := checkReferences(movement, products, locations); err != nil {
				return err
			}
		}
		movement.MovementID = now.UnixMilli()
		if maxID := movements.MaxID(); movement.MovementID <= maxID {
			movement.MovementID = maxID + 1
		}
		movements.Upsert(movement)
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", input.UserID).Str("product_id", movement.ProductID).Msg("movimiento no registrado")
		return entity.Movement{}, err
	}

	uc.log.Info().
		Int64("movement_id", movement.MovementID).
		Str("user_id", input.UserID).
		Str("kind", movement.Kind()).
		Str("product_id", movement.ProductID).
		Str("from", movement.FromLocation).
		Str("to", movement.ToLocation).
		Int64("qty", movement.Qty).
		Msg("movimiento registrado")
	return movement, nil
}

func checkReferences(m entity.Movement, products repository.ProductRepository, locations repository.LocationRepository) error {
	if _, ok := products.Find(m.ProductID); !ok {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, m.ProductID)
	}
	for _, id := range []string{m.FromLocation, m.ToLocation} {
		if id == "" {
			continue
		}
		if _, ok := locations.Find(id); !ok {
			return fmt.Errorf("%w: ubicación %s", domain.ErrNotFound, id)
		}
	}
	return nil
}
