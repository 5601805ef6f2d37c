package model

import "github.com/shopspring/decimal"

type EstadoOrden string

const (
	OrdenEmitida    EstadoOrden = "Emitida"
	OrdenProgramada EstadoOrden = "Programada"
)

// OrdenCompra is emitted in batch from adjudicated quotation items, one
// per (proveedor, modalidad de pago) group. Receptions are appended over
// time as deliveries get scheduled.
type OrdenCompra struct {
	IDOrden           string
	IDSolicitudOrigen string
	IDProveedor       string
	NombreProveedor   string
	FechaEmision      string
	ModalidadPago     ModalidadPago
	MontoTotalOrden   decimal.Decimal
	Items             []OrdenCompraItem
	Estado            EstadoOrden
	Recepciones       []Recepcion
}

type OrdenCompraItem struct {
	IDItem             string
	NombreProducto     string
	CantidadAdjudicada int
	UnidadMedida       string
	MontoTotal         decimal.Decimal
}
