package model

import "github.com/google/uuid"

type EstadoPedido string

const (
	PedidoPendiente EstadoPedido = "Pendiente"
	PedidoRevisado  EstadoPedido = "Revisado"
)

type EstadoItem string

const (
	ItemPendienteCotizacion EstadoItem = "Pendiente"
	ItemEnCotizacion        EstadoItem = "En Cotización"
)

// Pedido is an order-intake document. Only its estado transitions
// (marked reviewed); line items move to En Cotización once grouped
// into a quotation request.
type Pedido struct {
	IDPedido        string
	FechaEmision    string
	AreaSolicitante string
	EstadoPedido    EstadoPedido
	Productos       []ItemPedido
}

// ItemPedido is one line of a Pedido. IDItem is assigned at creation and
// carried through every downstream structure, so two lines with the same
// product name in the same pedido remain distinguishable.
type ItemPedido struct {
	IDItem         uuid.UUID
	NombreProducto string
	Cantidad       int
	UnidadMedida   string
	EstadoItem     EstadoItem
}
