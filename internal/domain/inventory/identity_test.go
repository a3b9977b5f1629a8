package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/inventory"
)

func withID(m entity.Movement, id int64) entity.Movement {
	m.MovementID = id
	return m
}

func TestReassignDuplicateIDs_RenumeraSinPerderMovimientos(t *testing.T) {
	log := []entity.Movement{
		withID(mov("P1", "", "L1", 10), 5),
		withID(mov("P1", "", "L1", 7), 5),
		withID(mov("P2", "", "L1", 1), 3),
		withID(mov("P2", "L1", "", 1), 5),
	}

	out, n := inventory.ReassignDuplicateIDs(log)
	assert.Equal(t, 2, n)
	require.Len(t, out, 4)
	assert.Equal(t, []int64{5, 6, 3, 7}, []int64{out[0].MovementID, out[1].MovementID, out[2].MovementID, out[3].MovementID})
	assert.Equal(t, map[string]int64{"P1": 17, "P2": 0}, inventory.AggregateByProduct(out), "ningún movimiento se pierde")
	assert.Equal(t, int64(5), log[1].MovementID, "la entrada no se modifica")
}

func TestReassignDuplicateIDs_SinDuplicados(t *testing.T) {
	log := []entity.Movement{withID(mov("P1", "", "L1", 1), 1), withID(mov("P1", "", "L1", 1), 2)}
	out, n := inventory.ReassignDuplicateIDs(log)
	assert.Zero(t, n)
	assert.Equal(t, log, out)

	empty, n := inventory.ReassignDuplicateIDs(nil)
	assert.Zero(t, n)
	assert.Empty(t, empty)
}
