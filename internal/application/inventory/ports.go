package inventory

import "time"

// Clock fuente de la hora de registro de los movimientos.
type Clock func() time.Time

// SystemClock hora del sistema.
func SystemClock() time.Time { return time.Now() }
