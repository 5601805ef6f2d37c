package dto

import "github.com/shopspring/decimal"

// PerfilProveedorRequest carries the step-1 contact/profile fields of the
// two-step provider flow. Fields merge into the draft; later fields win.
type PerfilProveedorRequest struct {
	RazonSocial string `json:"razon_social" validate:"required"`
	RUC         string `json:"ruc"          validate:"required"`
	Direccion   string `json:"direccion"`
	Telefono    string `json:"telefono"     validate:"required"`
	Email       string `json:"email"        validate:"omitempty,email"`
}

// ProductoOfrecidoRequest is one line of the step-2 offered-product list.
type ProductoOfrecidoRequest struct {
	Nombre            string          `json:"nombre"             validate:"required"`
	UnidadMedida      string          `json:"unidad_medida"      validate:"required"`
	PrecioReferencial decimal.Decimal `json:"precio_referencial" validate:"min=0"`
}

// GuardarProveedorRequest closes the two-step flow. The product list
// replaces the previous one wholesale — callers supply the complete list
// on every save.
type GuardarProveedorRequest struct {
	Productos []ProductoOfrecidoRequest `json:"productos" validate:"required,min=1,dive"`
}
