package catalog

// Column-name metrics and weights below are the reference scouting configuration.
// Weights are signed: negative means a lower raw value is better.

var defaultPositions = []Position{
	{
		Name:     "Portero",
		Codes:    []string{"GK"},
		Profiles: []string{"Portero Bueno con los Pies", "Portero con Muchas paradas"},
	},
	{
		Name:     "Defensa Central",
		Codes:    []string{"CB", "RCB", "LCB"},
		Profiles: []string{"Central ganador de Duelos", "Central Rapido", "Central Tecnico"},
	},
	{
		Name:     "Lateral Izquierdo",
		Codes:    []string{"LB", "LWB"},
		Profiles: []string{"Lateral Defensivo", "Lateral Ofensivo"},
	},
	{
		Name:     "Lateral Derecho",
		Codes:    []string{"RB", "RWB"},
		Profiles: []string{"Lateral Defensivo", "Lateral Ofensivo"},
	},
	{
		Name:     "Mediocentro Defensivo",
		Codes:    []string{"DMF", "CDM"},
		Profiles: []string{"Mediocentro Defensivo (Fisico)", "Mediocentro BoxToBox", "Mediocentro Creador"},
	},
	{
		Name:     "Mediocentro",
		Codes:    []string{"RCMF", "LCMF", "CM"},
		Profiles: []string{"Mediocentro BoxToBox", "Mediocentro Creador"},
	},
	{
		Name:     "Extremo",
		Codes:    []string{"RW", "RWF", "LW", "LWF"},
		Profiles: []string{"Extremo Regateador", "Extremo centrador", "Extremo Goleador"},
	},
	{
		Name:     "Delantero",
		Codes:    []string{"CF", "ST"},
		Profiles: []string{"Delantero Cabeceador", "Delantero Killer", "Delantero Asociativo"},
	},
}

var defaultProfiles = []Profile{
	{
		Name:        "Portero Bueno con los Pies",
		Description: "Arquero con capacidad para iniciar jugadas, distribuir el balón y jugar con los pies bajo presión.",
		Metrics: []MetricSpec{
			{Name: "Pases recibidos /90", Weight: 0.075},
			{Name: "Pases/90", Weight: 0.1},
			{Name: "Precisión pases, %", Weight: 0.1251},
			{Name: "Pases hacia adelante/90", Weight: 0.05},
			{Name: "Precisión pases hacia adelante, %", Weight: 0.075},
			{Name: "Pases laterales/90", Weight: 0.05},
			{Name: "Precisión pases laterales, %", Weight: 0.075},
			{Name: "Pases cortos / medios /90", Weight: 0.05},
			{Name: "Precisión pases cortos / medios, %", Weight: 0.075},
			{Name: "Pases largos/90", Weight: 0.05},
			{Name: "Precisión pases largos, %", Weight: 0.075},
			{Name: "Goles recibidos/90", Weight: -0.1},
			{Name: "Remates en contra/90", Weight: -0.075},
			{Name: "xG en contra/90", Weight: -0.05},
			{Name: "Goles evitados/90", Weight: 0.1},
			{Name: "Salidas/90", Weight: 0.05},
			{Name: "Duelos aéreos en los 90", Weight: 0.075},
			{Name: "Paradas, %", Weight: 0.1},
			{Name: "Porterías imbatidas en los 90", Weight: 0.1},
		},
	},
	{
		Name:        "Portero con Muchas paradas",
		Description: "Arquero especializado en paradas y con gran capacidad para evitar goles en situaciones difíciles.",
		Metrics: []MetricSpec{
			{Name: "Goles recibidos/90", Weight: -0.5},
			{Name: "Remates en contra/90", Weight: -0.373},
			{Name: "xG en contra/90", Weight: -0.25},
			{Name: "Goles evitados/90", Weight: 0.5},
			{Name: "Salidas/90", Weight: 0.25},
			{Name: "Duelos aéreos en los 90", Weight: 0.373},
			{Name: "Paradas, %", Weight: 0.5},
			{Name: "Porterías imbatidas en los 90", Weight: 0.5},
		},
	},
	{
		Name:        "Lateral Defensivo",
		Description: "Lateral que prioriza el trabajo defensivo, ganador de duelos e interceptaciones.",
		Metrics: []MetricSpec{
			{Name: "Duelos ganados, %", Weight: 0.1209},
			{Name: "Acciones defensivas realizadas/90", Weight: 0.0909},
			{Name: "Duelos defensivos/90", Weight: 0.0909},
			{Name: "Duelos defensivos ganados, %", Weight: 0.1209},
			{Name: "Duelos aéreos ganados, %", Weight: 0.0909},
			{Name: "Interceptaciones/90", Weight: 0.1518},
			{Name: "Pases/90", Weight: 0.0609},
			{Name: "Precisión pases, %", Weight: 0.1209},
			{Name: "Pases hacia adelante/90", Weight: 0.0609},
			{Name: "Precisión pases hacia adelante, %", Weight: 0.0909},
		},
	},
	{
		Name:        "Lateral Ofensivo",
		Description: "Lateral con vocación ofensiva, capaz de llegar a línea de fondo y centrar con precisión.",
		Metrics: []MetricSpec{
			{Name: "Duelos ganados, %", Weight: 0.0758},
			{Name: "Acciones defensivas realizadas/90", Weight: 0.0568},
			{Name: "Duelos defensivos/90", Weight: 0.0568},
			{Name: "Duelos defensivos ganados, %", Weight: 0.0758},
			{Name: "Duelos aéreos ganados, %", Weight: 0.0568},
			{Name: "Interceptaciones/90", Weight: 0.0947},
			{Name: "Pases/90", Weight: 0.0379},
			{Name: "Precisión pases, %", Weight: 0.0758},
			{Name: "Pases hacia adelante/90", Weight: 0.0379},
			{Name: "Precisión pases hacia adelante, %", Weight: 0.0568},
			{Name: "Acciones de ataque exitosas/90", Weight: 0.0313},
			{Name: "Centros al área pequeña/90", Weight: 0.0313},
			{Name: "Duelos atacantes ganados, %", Weight: 0.0313},
			{Name: "Carreras en progresión/90", Weight: 0.0313},
			{Name: "Aceleraciones/90", Weight: 0.0313},
			{Name: "Pases recibidos /90", Weight: 0.0313},
			{Name: "Third assists/90", Weight: 0.0313},
			{Name: "Precisión pases en el último tercio, %", Weight: 0.0313},
			{Name: "Pases hacía el área pequeña, %", Weight: 0.0313},
			{Name: "Precisión pases en profundidad, %", Weight: 0.0313},
			{Name: "Centros desde el último tercio/90", Weight: 0.0313},
			{Name: "Precisión pases progresivos, %", Weight: 0.0313},
		},
	},
	{
		Name:        "Central ganador de Duelos",
		Description: "Defensa central dominante en los duelos aéreos y terrestres.",
		Metrics: []MetricSpec{
			{Name: "Duelos/90", Weight: 0.1579},
			{Name: "Duelos ganados, %", Weight: 0.2105},
			{Name: "Duelos defensivos/90", Weight: 0.1053},
			{Name: "Duelos defensivos ganados, %", Weight: 0.2632},
			{Name: "Duelos aéreos en los 90", Weight: 0.1053},
			{Name: "Duelos aéreos ganados, %", Weight: 0.1579},
		},
	},
	{
		Name:        "Central Rapido",
		Description: "Defensa central con buena velocidad, ideal para equipos con línea alta.",
		Metrics: []MetricSpec{
			{Name: "Aceleraciones/90", Weight: 0.16},
			{Name: "Carreras en progresión/90", Weight: 0.12},
			{Name: "Interceptaciones/90", Weight: 0.2},
			{Name: "Duelos defensivos/90", Weight: 0.08},
			{Name: "Posesión conquistada después de una interceptación", Weight: 0.16},
			{Name: "Entradas/90", Weight: 0.28},
		},
	},
	{
		Name:        "Central Tecnico",
		Description: "Defensa central con buena técnica y capacidad para iniciar el juego desde atrás.",
		Metrics: []MetricSpec{
			{Name: "Pases/90", Weight: 0.0755},
			{Name: "Precisión pases, %", Weight: 0.0943},
			{Name: "Pases cortos / medios /90", Weight: 0.0566},
			{Name: "Precisión pases cortos / medios, %", Weight: 0.0755},
			{Name: "Pases largos/90", Weight: 0.0566},
			{Name: "Precisión pases largos, %", Weight: 0.0755},
			{Name: "Pases hacia adelante/90", Weight: 0.0566},
			{Name: "Precisión pases hacia adelante, %", Weight: 0.0755},
			{Name: "Pases hacia atrás/90", Weight: 0.0377},
			{Name: "Precision pases hacia atrás, %", Weight: 0.0566},
			{Name: "Pases laterales/90", Weight: 0.0377},
			{Name: "Precisión pases laterales, %", Weight: 0.0566},
			{Name: "Jugadas claves/90", Weight: 0.0755},
			{Name: "Pases en el último tercio/90", Weight: 0.0943},
			{Name: "Precisión pases en el último tercio, %", Weight: 0.0755},
		},
	},
	{
		Name:        "Mediocentro Defensivo (Fisico)",
		Description: "Mediocentro físico especializado en recuperación y cobertura defensiva.",
		Metrics: []MetricSpec{
			{Name: "Duelos/90", Weight: 0.129},
			{Name: "Duelos ganados, %", Weight: 0.1613},
			{Name: "Duelos defensivos/90", Weight: 0.129},
			{Name: "Duelos defensivos ganados, %", Weight: 0.1613},
			{Name: "Interceptaciones/90", Weight: 0.129},
			{Name: "Entradas/90", Weight: 0.129},
			{Name: "Faltas/90", Weight: -0.0968},
			{Name: "Posesión conquistada después de una entrada", Weight: 0.129},
			{Name: "Posesión conquistada después de una interceptación", Weight: 0.129},
		},
	},
	{
		Name:        "Mediocentro BoxToBox",
		Description: "Mediocentro con capacidad para participar tanto en defensa como en ataque.",
		Metrics: []MetricSpec{
			{Name: "Duelos/90", Weight: 0.07},
			{Name: "Duelos ganados, %", Weight: 0.09},
			{Name: "Pases/90", Weight: 0.07},
			{Name: "Precisión pases, %", Weight: 0.08},
			{Name: "Interceptaciones/90", Weight: 0.07},
			{Name: "Carreras en progresión/90", Weight: 0.09},
			{Name: "Aceleraciones/90", Weight: 0.07},
			{Name: "Remates/90", Weight: 0.07},
			{Name: "Goles/90", Weight: 0.06},
			{Name: "Asistencias/90", Weight: 0.07},
			{Name: "Toques en el área de penalti/90", Weight: 0.07},
			{Name: "xG/90", Weight: 0.06},
			{Name: "Pases al área de penalti/90", Weight: 0.06},
		},
	},
	{
		Name:        "Mediocentro Creador",
		Description: "Mediocentro técnico especializado en la creación de juego y asistencias.",
		Metrics: []MetricSpec{
			{Name: "Asistencias/90", Weight: 0.12},
			{Name: "xA/90", Weight: 0.12},
			{Name: "Acciones de ataque exitosas/90", Weight: 0.1},
			{Name: "Goles/90", Weight: 0.07},
			{Name: "Duelos/90", Weight: 0.07},
			{Name: "Duelos ganados, %", Weight: 0.07},
			{Name: "Entradas/90", Weight: 0.01},
			{Name: "Interceptaciones/90", Weight: 0.06},
			{Name: "Regates/90", Weight: 0.07},
			{Name: "Precisión pases, %", Weight: 0.05},
			{Name: "Precisión pases hacia adelante, %", Weight: 0.05},
			{Name: "Jugadas claves/90", Weight: 0.04},
			{Name: "Pases en el último tercio/90", Weight: 0.04},
			{Name: "Precisión pases en el último tercio, %", Weight: 0.04},
			{Name: "Centros/90", Weight: 0.03},
			{Name: "Precisión centros, %", Weight: 0.03},
			{Name: "Desmarques/90", Weight: 0.03},
		},
	},
	{
		Name:        "Extremo Regateador",
		Description: "Extremo habilidoso con capacidad para superar rivales en el uno contra uno.",
		Metrics: []MetricSpec{
			{Name: "Regates/90", Weight: 0.15},
			{Name: "Regates realizados, %", Weight: 0.08},
			{Name: "Duelos atacantes/90", Weight: 0.08},
			{Name: "Duelos atacantes ganados, %", Weight: 0.1},
			{Name: "Aceleraciones/90", Weight: 0.08},
			{Name: "Remates/90", Weight: 0.08},
			{Name: "Asistencias/90", Weight: 0.08},
			{Name: "Jugadas claves/90", Weight: 0.08},
			{Name: "Toques en el área de penalti/90", Weight: 0.09},
			{Name: "Centros/90", Weight: 0.08},
			{Name: "Precisión centros, %", Weight: 0.1},
		},
	},
	{
		Name:        "Extremo centrador",
		Description: "Extremo especializado en llegar a línea de fondo y centrar con precisión.",
		Metrics: []MetricSpec{
			{Name: "Centros/90", Weight: 0.15},
			{Name: "Precisión centros, %", Weight: 0.09},
			{Name: "Jugadas claves/90", Weight: 0.1},
			{Name: "Asistencias/90", Weight: 0.1},
			{Name: "Pases en el último tercio/90", Weight: 0.07},
			{Name: "Precisión pases en el último tercio, %", Weight: 0.09},
			{Name: "Toques en el área de penalti/90", Weight: 0.05},
			{Name: "Pases al área de penalti/90", Weight: 0.09},
			{Name: "Regates/90", Weight: 0.08},
			{Name: "Aceleraciones/90", Weight: 0.09},
			{Name: "xA/90", Weight: 0.09},
		},
	},
	{
		Name:        "Extremo Goleador",
		Description: "Extremo con alta capacidad goleadora que tiende a finalizar jugadas.",
		Metrics: []MetricSpec{
			{Name: "Goles/90", Weight: 0.1},
			{Name: "Remates/90", Weight: 0.13},
			{Name: "xG/90", Weight: 0.11},
			{Name: "Goles de cabeza/90", Weight: 0.13},
			{Name: "Tiros a la portería, %", Weight: 0.13},
			{Name: "Asistencias/90", Weight: 0.06},
			{Name: "Jugadas claves/90", Weight: 0.1},
			{Name: "Toques en el área de penalti/90", Weight: 0.1},
			{Name: "Goles hechos, %", Weight: 0.08},
		},
	},
	{
		Name:        "Delantero Cabeceador",
		Description: "Delantero especializado en el juego aéreo y remate de cabeza.",
		Metrics: []MetricSpec{
			{Name: "Goles de cabeza", Weight: 0.2},
			{Name: "Goles de cabeza/90", Weight: 0.1},
			{Name: "Duelos aéreos en los 90", Weight: 0.14},
			{Name: "Duelos aéreos ganados, %", Weight: 0.15},
			{Name: "Remates/90", Weight: 0.08},
			{Name: "Goles/90", Weight: 0.08},
			{Name: "xG/90", Weight: 0.08},
			{Name: "Toques en el área de penalti/90", Weight: 0.1},
		},
	},
	{
		Name:        "Delantero Killer",
		Description: "Delantero definidor con alto porcentaje de conversión de ocasiones.",
		Metrics: []MetricSpec{
			{Name: "Goles/90", Weight: 0.13},
			{Name: "xG/90", Weight: 0.1},
			{Name: "Remates/90", Weight: 0.1},
			{Name: "Tiros a la portería, %", Weight: 0.1},
			{Name: "Goles hechos, %", Weight: 0.1},
			{Name: "Asistencias/90", Weight: 0.02},
			{Name: "Jugadas claves/90", Weight: 0.05},
			{Name: "Toques en el área de penalti/90", Weight: 0.05},
			{Name: "Duelos ganados, %", Weight: 0.06},
			{Name: "Pases al área de penalti/90", Weight: 0.06},
			{Name: "Goles (excepto los penaltis)", Weight: 0.07},
			{Name: "Goles, excepto los penaltis/90", Weight: 0.07},
		},
	},
	{
		Name:        "Delantero Asociativo",
		Description: "Delantero que participa en el juego combinativo y crea ocasiones para sus compañeros.",
		Metrics: []MetricSpec{
			{Name: "Asistencias/90", Weight: 0.09},
			{Name: "Jugadas claves/90", Weight: 0.1},
			{Name: "Pases/90", Weight: 0.09},
			{Name: "Precisión pases, %", Weight: 0.09},
			{Name: "Duelos ganados, %", Weight: 0.09},
			{Name: "Toques en el área de penalti/90", Weight: 0.1},
			{Name: "Remates/90", Weight: 0.08},
			{Name: "xG/90", Weight: 0.08},
			{Name: "Goles/90", Weight: 0.08},
			{Name: "Pases en el último tercio/90", Weight: 0.08},
			{Name: "Precisión pases en el último tercio, %", Weight: 0.04},
			{Name: "Pases al área de penalti/90", Weight: 0.08},
		},
	},
}
