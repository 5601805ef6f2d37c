package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Proveedor represents a supplier with commercial data and the list of
// products it offers. ID is the display identifier ("PROV-01"); Token is
// the collision-safe internal identity assigned by the store.
type Proveedor struct {
	ID          string
	Token       uuid.UUID
	RazonSocial string
	RUC         string
	Direccion   string
	Telefono    string
	Email       string
	// Contacto mirrors Telefono on save — kept as a separate field because
	// downstream screens read it independently.
	Contacto  string
	Productos []ProductoOfrecido
}

// ProductoOfrecido is one line of a provider's offered-product list.
// The list is replaced wholesale on every save (shallow overwrite).
type ProductoOfrecido struct {
	Nombre            string
	UnidadMedida      string
	PrecioReferencial decimal.Decimal
}
