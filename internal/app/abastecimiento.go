package app

import (
	"fmt"

	"gescom/internal/dto"
	"gescom/internal/model"
	"gescom/internal/screen"
)

// Transition handlers for the procurement module. Each handler mutates
// at most one logical entity collection through its service and then
// selects the next screen.

// ── Proveedores ───────────────────────────────────────────────────────────────

func (m *Machine) IniciarRegistroProveedor() {
	m.proveedores.IniciarRegistro()
	m.Navegar(screen.ProviderFormStep1)
}

func (m *Machine) IniciarEdicionProveedor(id string) error {
	if err := m.proveedores.IniciarEdicion(id); err != nil {
		return err
	}
	m.Navegar(screen.ProviderFormStep1)
	return nil
}

func (m *Machine) ContinuarPaso2(req dto.PerfilProveedorRequest) error {
	if err := m.proveedores.ContinuarPaso2(req); err != nil {
		return err
	}
	m.Navegar(screen.ProviderFormStep2)
	return nil
}

// VolverPaso1 is the hand-coded back transition of the provider form;
// the draft is kept.
func (m *Machine) VolverPaso1() {
	m.Navegar(screen.ProviderFormStep1)
}

func (m *Machine) GuardarProveedor(req dto.GuardarProveedorRequest) error {
	if _, err := m.proveedores.Guardar(req); err != nil {
		return err
	}
	m.Navegar(screen.ProvidersList)
	return nil
}

func (m *Machine) CancelarFormularioProveedor() {
	m.proveedores.Cancelar()
	m.Navegar(screen.ProvidersList)
}

func (m *Machine) VerProveedor(id string) {
	m.proveedorSel = id
	m.Navegar(screen.ProviderDetails)
}

// ── Productos de catálogo ─────────────────────────────────────────────────────

func (m *Machine) IniciarRegistroProducto() {
	m.productos.IniciarRegistro()
	m.Navegar(screen.ProductForm)
}

func (m *Machine) IniciarEdicionProducto(id string) error {
	if err := m.productos.IniciarEdicion(id); err != nil {
		return err
	}
	m.Navegar(screen.ProductForm)
	return nil
}

func (m *Machine) GuardarProducto(req dto.GuardarProductoRequest) error {
	if _, err := m.productos.Guardar(req); err != nil {
		return err
	}
	m.Navegar(screen.ProductsList)
	return nil
}

func (m *Machine) CancelarFormularioProducto() {
	m.productos.Cancelar()
	m.Navegar(screen.ProductsList)
}

func (m *Machine) VerProducto(id string) {
	m.productoSel = id
	m.Navegar(screen.ProductDetails)
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

func (m *Machine) VerPedido(id string) {
	m.pedidoSel = id
	m.Navegar(screen.PedidoDetails)
}

func (m *Machine) MarcarPedidoRevisado(id string) {
	m.pedidos.MarcarRevisado(id)
	m.Navegar(screen.PedidosList)
}

// ── Solicitudes de cotización ─────────────────────────────────────────────────

func (m *Machine) VerSolicitud(id string) {
	m.solicitudSel = id
	m.Navegar(screen.SolicitudDetails)
}

func (m *Machine) GenerarSolicitud(items []model.ItemPendiente) error {
	solicitud, err := m.cotizaciones.GenerarSolicitud(items)
	if err != nil {
		return err
	}
	m.abrirConfirmacion(
		"¡Éxito!",
		fmt.Sprintf("Se ha generado la Solicitud de Cotización %s con %d ítems.", solicitud.IDSolicitud, len(solicitud.Items)),
		func() { m.Navegar(screen.SolicitudesList) },
	)
	return nil
}

func (m *Machine) IniciarRegistroCotizacion(idSolicitud string) {
	m.solicitudSel = idSolicitud
	m.Navegar(screen.RegisterQuote)
}

func (m *Machine) GuardarCotizacion(req dto.RegistrarCotizacionRequest) error {
	solicitud, err := m.cotizaciones.RegistrarCotizacion(m.solicitudSel, req)
	if err != nil {
		return err
	}
	m.modalPostCotizacion = dto.PostCotizacionModal{
		Abierto: true,
		Titulo:  "¡Éxito!",
		Mensaje: fmt.Sprintf("Cotización de %s registrada con éxito para la solicitud %s.", req.NombreProveedor, solicitud.IDSolicitud),
		OnAddAnother: func() {
			m.modalPostCotizacion.Abierto = false
		},
		OnFinish: func() {
			m.modalPostCotizacion = dto.PostCotizacionModal{}
			m.solicitudSel = ""
			m.Navegar(screen.SolicitudesList)
		},
	}
	return nil
}

func (m *Machine) IniciarEvaluacion(idSolicitud string) {
	m.solicitudSel = idSolicitud
	m.Navegar(screen.EvaluateQuotes)
}

func (m *Machine) Adjudicar(req dto.AdjudicarRequest) error {
	ordenes, err := m.cotizaciones.Adjudicar(req)
	if err != nil {
		return err
	}
	mensaje := "Se han generado las siguientes órdenes de compra:"
	for _, oc := range ordenes {
		mensaje += fmt.Sprintf(" %s para %s (%s).", oc.IDOrden, oc.NombreProveedor, oc.ModalidadPago)
	}
	m.abrirConfirmacion("¡Órdenes de Compra Generadas!", mensaje, func() {
		m.solicitudSel = ""
		m.Navegar(screen.SolicitudesList)
	})
	return nil
}

// ── Órdenes y recepciones ─────────────────────────────────────────────────────

func (m *Machine) VerOrden(id string) {
	m.ordenSel = id
	m.Navegar(screen.OrderDetailMonitoring)
}

func (m *Machine) IniciarProgramacionRecepcion(idOrden string) {
	m.ordenSel = idOrden
	m.Navegar(screen.ScheduleReceptionForm)
}

func (m *Machine) ConfirmarRecepcion(req dto.ProgramarRecepcionRequest) error {
	recepcion, transporte, err := m.recepciones.Programar(req)
	if err != nil {
		return err
	}
	mensaje := fmt.Sprintf("Recepción %s programada con éxito.", recepcion.IDRecepcion)
	if transporte != nil {
		mensaje += fmt.Sprintf(" Se ha generado el Pedido de Transporte %s para el recojo.", transporte.IDPedidoTransporte)
	}
	m.abrirConfirmacion("¡Programación Exitosa!", mensaje, func() {
		m.ordenSel = ""
		m.Navegar(screen.ScheduleReceptionsList)
	})
	return nil
}

func (m *Machine) IniciarValidacionGuias(idOrden, idRecepcion string, serial int) {
	m.recepcionSel = &SeleccionRecepcion{IDOrden: idOrden, IDRecepcion: idRecepcion, Serial: serial}
	m.Navegar(screen.RemissionGuideValidation)
}

func (m *Machine) ConfirmarGuias(req dto.ValidarGuiasRequest) error {
	iniciada, err := m.recepciones.ValidarGuias(req)
	if err != nil {
		return err
	}
	if !iniciada {
		// Silent no-op per contract: unknown ids leave state unchanged.
		return nil
	}
	m.abrirConfirmacion(
		"Recepción Iniciada",
		fmt.Sprintf("%d guía(s) de remisión registradas. La recepción %s ha cambiado a estado 'En Curso'.", len(req.Guias), req.IDRecepcion),
		func() {
			m.recepcionSel = nil
			m.Navegar(screen.RemissionGuideList)
		},
	)
	return nil
}

// ── Incidencias y reclamos ────────────────────────────────────────────────────

func (m *Machine) GenerarReclamo(req dto.GenerarReclamoRequest) error {
	reclamo, err := m.reclamos.GenerarReclamo(req)
	if err != nil {
		return err
	}
	m.abrirConfirmacion(
		"¡Reclamo Generado!",
		fmt.Sprintf("El reclamo %s ha sido generado y enviado al proveedor con %d incidencia(s) asociada(s).", reclamo.IDReclamo, len(req.IncidenciasIDs)),
		func() { m.Navegar(screen.IncidentsList) },
	)
	return nil
}
