package model

type EstadoIncidencia string

const (
	IncidenciaRegistrada EstadoIncidencia = "Registrada"
	IncidenciaEnReclamo  EstadoIncidencia = "En Reclamo"
)

type AccionCorrectiva string

const (
	AccionNotaCredito AccionCorrectiva = "Nota de Crédito"
	AccionReemplazo   AccionCorrectiva = "Reemplazo de Producto"
	AccionOtro        AccionCorrectiva = "Otro"
)

// Incidencia is a quality or delivery incident registered against an
// order reception.
type Incidencia struct {
	IDIncidencia  string
	IDOrdenCompra string
	IDRecepcion   string
	Tipo          string
	Descripcion   string
	Fecha         string
	Estado        EstadoIncidencia
}

// Reclamo consolidates a set of incidents into one claim sent to the
// provider. Incident ids are recorded as submitted; IncidenciasVinculadas
// counts how many of them actually matched the incident collection when
// their estado was flipped.
type Reclamo struct {
	IDReclamo             string
	FechaReclamo          string
	IncidenciasIDs        []string
	IncidenciasVinculadas int
	ObservacionReclamo    string
	AccionCorrectiva      AccionCorrectiva
	EstadoReclamo         string
}

// ReclamoEnviado is the only estado a Reclamo takes in this model.
const ReclamoEnviado = "Enviado"
