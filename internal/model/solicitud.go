package model

import "github.com/shopspring/decimal"

type EstadoSolicitud string

const (
	SolicitudGenerada   EstadoSolicitud = "Generada"
	SolicitudCotizada   EstadoSolicitud = "Cotizada"
	SolicitudAdjudicada EstadoSolicitud = "Adjudicada"
)

type ModalidadPago string

const (
	PagoContado ModalidadPago = "Contado"
	PagoCredito ModalidadPago = "Crédito"
)

// SolicitudCotizacion groups pending order-intake items for supplier
// pricing. CotizacionesRecibidas is append-only; Adjudicada is terminal.
type SolicitudCotizacion struct {
	IDSolicitud           string
	FechaEmision          string
	Estado                EstadoSolicitud
	Items                 []ItemPendiente
	CotizacionesRecibidas []CotizacionRecibida
}

// ItemPendiente is a pedido line item tagged with its origin pedido id.
type ItemPendiente struct {
	ItemPedido
	OrigenPedidoID string
}

// CotizacionRecibida is a supplier quote registered against a solicitud.
type CotizacionRecibida struct {
	IDProveedor     string
	NombreProveedor string
	ModalidadPago   ModalidadPago
	PlazoEntrega    string
	Items           []CotizacionRecibidaItem
}

type CotizacionRecibidaItem struct {
	IDItem             string
	NombreProducto     string
	CantidadRequerida  int
	UnidadMedida       string
	PrecioUnitario     decimal.Decimal
	MontoTotalOfertado decimal.Decimal
}
