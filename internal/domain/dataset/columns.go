package dataset

// Column names established by the stats provider export. They are matched exactly.
const (
	ColumnPlayer     = "Jugador"
	ColumnPosition   = "Posición específica"
	ColumnTeamPeriod = "Equipo durante el período seleccionado"
	ColumnTeam       = "Equipo"
	ColumnAge        = "Edad"
	ColumnMinutes    = "Minutos jugados"
	ColumnPassport   = "Pasaporte"
)
