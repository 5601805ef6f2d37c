package dto

import (
	"github.com/shopspring/decimal"
)

// RegistrarCotizacionRequest registers one supplier quote against an open
// solicitud. The received-quotes list is append-only.
type RegistrarCotizacionRequest struct {
	IDProveedor     string                       `json:"id_proveedor"     validate:"required"`
	NombreProveedor string                       `json:"nombre_proveedor" validate:"required"`
	ModalidadPago   string                       `json:"modalidad_pago"   validate:"required,oneof=Contado Crédito"`
	PlazoEntrega    string                       `json:"plazo_entrega"`
	Items           []ItemCotizadoRequest        `json:"items"            validate:"required,min=1,dive"`
}

type ItemCotizadoRequest struct {
	IDItem            string          `json:"id_item"            validate:"required"`
	NombreProducto    string          `json:"nombre_producto"    validate:"required"`
	CantidadRequerida int             `json:"cantidad_requerida" validate:"required,min=1"`
	UnidadMedida      string          `json:"unidad_medida"`
	PrecioUnitario    decimal.Decimal `json:"precio_unitario"    validate:"min=0"`
}

// SeleccionAdjudicada maps one quoted item to its winning provider,
// price and payment terms. Selections group by (proveedor, modalidad de
// pago) into purchase orders.
type SeleccionAdjudicada struct {
	IDItem          string          `json:"id_item"          validate:"required"`
	IDProveedor     string          `json:"id_proveedor"     validate:"required"`
	NombreProveedor string          `json:"nombre_proveedor" validate:"required"`
	ModalidadPago   string          `json:"modalidad_pago"   validate:"required,oneof=Contado Crédito"`
	NombreProducto  string          `json:"nombre_producto"  validate:"required"`
	Cantidad        int             `json:"cantidad"         validate:"required,min=1"`
	UnidadMedida    string          `json:"unidad_medida"`
	Monto           decimal.Decimal `json:"monto"            validate:"min=0"`
}

// AdjudicarRequest carries the full adjudication for one solicitud.
type AdjudicarRequest struct {
	IDSolicitud string                `json:"id_solicitud" validate:"required"`
	Selecciones []SeleccionAdjudicada `json:"selecciones"  validate:"required,min=1,dive"`
}
