package entity

// Snapshot es el estado completo del inventario que se intercambia con el proveedor de persistencia.
// Products y Locations conservan el orden de inserción.
type Snapshot struct {
	Products  []Product  `json:"products"`
	Locations []Location `json:"locations"`
	Movements []Movement `json:"movements"`
}

// IsEmpty indica si no hay ninguna entidad registrada.
func (s *Snapshot) IsEmpty() bool {
	return s == nil || (len(s.Products) == 0 && len(s.Locations) == 0 && len(s.Movements) == 0)
}
