package dto

import "github.com/shopspring/decimal"

// GuardarProductoRequest is the single-step catalog product draft.
type GuardarProductoRequest struct {
	Nombre            string          `json:"nombre"             validate:"required"`
	Categoria         string          `json:"categoria"          validate:"required"`
	Descripcion       string          `json:"descripcion"`
	UnidadMedida      string          `json:"unidad_medida"      validate:"required"`
	PrecioReferencial decimal.Decimal `json:"precio_referencial" validate:"min=0"`
}
