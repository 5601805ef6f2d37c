package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductoCatalogo is a catalog product created or edited through the
// single-step draft flow. Products are never deleted.
type ProductoCatalogo struct {
	IDProducto        string
	Token             uuid.UUID
	Nombre            string
	Categoria         string
	Descripcion       string
	UnidadMedida      string
	PrecioReferencial decimal.Decimal
}
