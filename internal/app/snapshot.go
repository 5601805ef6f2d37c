package app

import (
	"gescom/internal/dto"
	"gescom/internal/model"
	"gescom/internal/screen"
)

// Snapshot is the read model a presentational consumer renders from.
// It is assembled on demand from the current screen, the selections and
// the derived views; the slices inside come straight from the
// collections and must not be mutated by the consumer.
type Snapshot struct {
	Pantalla screen.Screen

	Proveedores []model.Proveedor
	Productos   []model.ProductoCatalogo
	Pedidos     []model.Pedido
	Solicitudes []model.SolicitudCotizacion
	Ordenes     []model.OrdenCompra
	Transporte  []model.PedidoTransporte
	Incidencias []model.Incidencia
	Reclamos    []model.Reclamo

	// Items of reviewed pedidos available for grouping into a new
	// quotation request.
	ItemsPendientes []model.ItemPendiente

	Clientes []model.Cliente
	Maestros []model.Maestro
	Reportes []model.Reporte

	ResumenVentas   []model.ResumenVenta
	PagosRealizados []model.PagoRealizado
	PagosPendientes []model.PagoPendiente
	Anulaciones     []model.Anulacion
	Devoluciones    []model.Devolucion
	Cambios         []model.Cambio

	// Resolved selections, nil when nothing is selected or the id no
	// longer matches.
	ProveedorSel *model.Proveedor
	ProductoSel  *model.ProductoCatalogo
	PedidoSel    *model.Pedido
	SolicitudSel *model.SolicitudCotizacion
	OrdenSel     *model.OrdenCompra
	ClienteSel   *model.Cliente
	MaestroSel   *model.Maestro
	ReporteSel   *model.Reporte
	VentaSel     *model.VentaDetalle
	TipoExito    string

	RecepcionSel *SeleccionRecepcion

	RegistrandoVenta  bool
	ViendoPagoDe      string
	ReciboCuota       *model.Cuota
	RegistrandoPagoDe *model.PagoPendiente

	CajaAbierta bool
	ModalCaja   string

	ModalConfirmacion   dto.ConfirmacionModal
	ModalPostCotizacion dto.PostCotizacionModal
	ModalAnulacion      *model.VentaDetalle
	ModalReclamoVenta   *ReclamoVenta
}

// Snapshot assembles the current read model.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		Pantalla: m.pantalla,

		Proveedores: m.proveedores.Listar(),
		Productos:   m.productos.Listar(),
		Pedidos:     m.pedidos.Listar(),
		Solicitudes: m.cotizaciones.Listar(),
		Ordenes:     m.recepciones.ListarOrdenes(),
		Transporte:  m.recepciones.ListarPedidosTransporte(),
		Incidencias: m.reclamos.ListarIncidencias(),
		Reclamos:    m.reclamos.ListarReclamos(),

		ItemsPendientes: m.pedidos.ItemsPendientesCotizacion(),

		Clientes: m.clientes.ListarClientes(),
		Maestros: m.clientes.ListarMaestros(),
		Reportes: m.clientes.ListarReportes(),

		ResumenVentas:   m.ventas.ResumenVentas(),
		PagosRealizados: m.ventas.PagosRealizados(),
		PagosPendientes: m.ventas.PagosPendientes(),
		Anulaciones:     m.ventas.ListarAnulaciones(),
		Devoluciones:    m.ventas.ListarDevoluciones(),
		Cambios:         m.ventas.ListarCambios(),

		TipoExito: m.tipoExito,

		RegistrandoVenta:  m.registrandoVenta,
		ViendoPagoDe:      m.viendoPagoDe,
		ReciboCuota:       m.reciboCuota,
		RegistrandoPagoDe: m.registrandoPagoDe,

		CajaAbierta: m.cajaAbierta,
		ModalCaja:   m.modalCaja,

		ModalConfirmacion:   m.modalConfirmacion,
		ModalPostCotizacion: m.modalPostCotizacion,
		ModalAnulacion:      m.modalAnulacion,
	}

	if m.proveedorSel != "" {
		s.ProveedorSel, _ = m.proveedores.ObtenerPorID(m.proveedorSel)
	}
	if m.productoSel != "" {
		s.ProductoSel, _ = m.productos.ObtenerPorID(m.productoSel)
	}
	if m.pedidoSel != "" {
		s.PedidoSel, _ = m.pedidos.ObtenerPorID(m.pedidoSel)
	}
	if m.solicitudSel != "" {
		s.SolicitudSel, _ = m.cotizaciones.ObtenerPorID(m.solicitudSel)
	}
	if m.ordenSel != "" {
		s.OrdenSel, _ = m.recepciones.ObtenerOrden(m.ordenSel)
	}
	if m.clienteSel != "" {
		s.ClienteSel, _ = m.clientes.ObtenerCliente(m.clienteSel)
	}
	if m.maestroSel != "" {
		s.MaestroSel, _ = m.clientes.ObtenerMaestro(m.maestroSel)
	}
	if m.reporteSel != "" {
		s.ReporteSel, _ = m.clientes.ObtenerReporte(m.reporteSel)
	}
	s.VentaSel = m.VentaSeleccionada()

	s.RecepcionSel = m.recepcionSel
	s.ModalReclamoVenta = m.modalReclamoVenta
	return s
}
