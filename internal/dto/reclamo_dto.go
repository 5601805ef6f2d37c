package dto

// GenerarReclamoRequest consolidates a set of incidents into one claim.
// Unmatched incident ids are still recorded on the claim; the status
// flip only touches incidents that exist.
type GenerarReclamoRequest struct {
	IncidenciasIDs   []string `json:"incidencias_ids"   validate:"required,min=1"`
	Observacion      string   `json:"observacion"`
	AccionCorrectiva string   `json:"accion_correctiva" validate:"required,oneof='Nota de Crédito' 'Reemplazo de Producto' Otro"`
}
