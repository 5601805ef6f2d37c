package store

import "gescom/internal/model"

// Almacen groups every entity collection owned by the state machine.
// Each collection is independently owned — no shared mutable aliasing
// across them.
type Almacen struct {
	Proveedores       *Collection[model.Proveedor]
	Productos         *Collection[model.ProductoCatalogo]
	Pedidos           *Collection[model.Pedido]
	Solicitudes       *Collection[model.SolicitudCotizacion]
	OrdenesCompra     *Collection[model.OrdenCompra]
	PedidosTransporte *Collection[model.PedidoTransporte]
	Incidencias       *Collection[model.Incidencia]
	Reclamos          *Collection[model.Reclamo]
	Clientes          *Collection[model.Cliente]
	Maestros          *Collection[model.Maestro]
	Reportes          *Collection[model.Reporte]
	Ventas            *Collection[model.VentaDetalle]
	Anulaciones       *Collection[model.Anulacion]
	Devoluciones      *Collection[model.Devolucion]
	Cambios           *Collection[model.Cambio]
}

// NewAlmacen builds the empty collections with their display-id formats.
func NewAlmacen() *Almacen {
	return &Almacen{
		Proveedores:       New[model.Proveedor]("PROV-", 2),
		Productos:         New[model.ProductoCatalogo]("PROD-", 2),
		Pedidos:           New[model.Pedido]("PED-", 3),
		Solicitudes:       New[model.SolicitudCotizacion]("SC-", 3),
		OrdenesCompra:     New[model.OrdenCompra]("OC-", 3),
		PedidosTransporte: New[model.PedidoTransporte]("PT-", 3),
		Incidencias:       New[model.Incidencia]("INC-", 3),
		Reclamos:          New[model.Reclamo]("REC-G-", 3),
		Clientes:          New[model.Cliente]("CLI-", 3),
		Maestros:          New[model.Maestro]("MAE-", 3),
		Reportes:          New[model.Reporte]("REP-", 3),
		Ventas:            New[model.VentaDetalle]("V-", 3),
		Anulaciones:       New[model.Anulacion]("A-", 3),
		Devoluciones:      New[model.Devolucion]("D-", 3),
		Cambios:           New[model.Cambio]("C-", 3),
	}
}
