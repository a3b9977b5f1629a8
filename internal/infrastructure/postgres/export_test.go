package postgres

var (
	ProductRows        = productRows
	LocationRows       = locationRows
	MovementRows       = movementRows
	NormalizeTimestamp = normalizeTimestamp
	PreferIPv4         = preferIPv4
	IsUniqueViolation  = isUniqueViolation
)
