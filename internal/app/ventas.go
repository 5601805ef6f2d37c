package app

import (
	"gescom/internal/dto"
	"gescom/internal/model"
	"gescom/internal/screen"

	"github.com/rs/zerolog/log"
)

// Transition handlers for the sales module. The sub-views of the sales
// screens (detail panel, payment schedule, installment receipt) are
// driven by the transient selections, which the navigation guard wipes
// on every screen change.

// ── Selección de venta ────────────────────────────────────────────────────────

// SeleccionarVenta toggles the detail panel: selecting the already
// selected sale closes it, selecting another one replaces it and
// collapses the registration form and payment sub-views.
func (m *Machine) SeleccionarVenta(id string) {
	if m.ventaSel == id {
		m.ventaSel = ""
		return
	}
	m.ventaSel = id
	m.registrandoVenta = false
	m.viendoPagoDe = ""
	m.reciboCuota = nil
}

// VolverALista closes the detail panel and its sub-views without
// navigating.
func (m *Machine) VolverALista() {
	m.ventaSel = ""
	m.viendoPagoDe = ""
	m.reciboCuota = nil
}

// VentaSeleccionada resolves the selected sale, nil when none.
func (m *Machine) VentaSeleccionada() *model.VentaDetalle {
	if m.ventaSel == "" {
		return nil
	}
	v, ok := m.ventas.ObtenerPorID(m.ventaSel)
	if !ok {
		return nil
	}
	return v
}

// ── Caja ──────────────────────────────────────────────────────────────────────

// AlternarModalCaja opens the confirmation for the opposite cash
// register state.
func (m *Machine) AlternarModalCaja() {
	if m.cajaAbierta {
		m.modalCaja = "close"
	} else {
		m.modalCaja = "open"
	}
}

func (m *Machine) ConfirmarAccionCaja() {
	switch m.modalCaja {
	case "open":
		m.cajaAbierta = true
	case "close":
		m.cajaAbierta = false
	}
	m.modalCaja = ""
}

func (m *Machine) CerrarModalCaja() { m.modalCaja = "" }

func (m *Machine) CajaAbierta() bool { return m.cajaAbierta }

// ── Registro de venta ─────────────────────────────────────────────────────────

func (m *Machine) IniciarRegistroVenta() {
	m.registrandoVenta = true
	m.ventaSel = ""
	m.viendoPagoDe = ""
	m.reciboCuota = nil
}

func (m *Machine) CancelarRegistroVenta() { m.registrandoVenta = false }

func (m *Machine) RegistrarVenta(req dto.RegistrarVentaRequest) error {
	if _, err := m.ventas.RegistrarVenta(req); err != nil {
		return err
	}
	m.registrandoVenta = false
	return nil
}

// ── Pagos ─────────────────────────────────────────────────────────────────────

func (m *Machine) VerCronogramaPago(idVenta string) { m.viendoPagoDe = idVenta }

// VolverADetalle collapses the schedule and receipt sub-views back to
// the sale detail panel.
func (m *Machine) VolverADetalle() {
	m.viendoPagoDe = ""
	m.reciboCuota = nil
}

func (m *Machine) VerReciboCuota(cuota model.Cuota) { m.reciboCuota = &cuota }

func (m *Machine) VolverACronograma() { m.reciboCuota = nil }

func (m *Machine) AbrirRegistroPago(pago model.PagoPendiente) { m.registrandoPagoDe = &pago }

func (m *Machine) CerrarRegistroPago() { m.registrandoPagoDe = nil }

func (m *Machine) ConfirmarPago(req dto.ConfirmarPagoRequest) error {
	if err := m.ventas.ConfirmarPago(req); err != nil {
		return err
	}
	m.registrandoPagoDe = nil
	return nil
}

// ── Anulaciones y reclamos de venta ───────────────────────────────────────────

func (m *Machine) AbrirModalAnulacion(idVenta string) {
	venta, ok := m.ventas.ObtenerPorID(idVenta)
	if !ok {
		return
	}
	m.modalAnulacion = venta
}

func (m *Machine) CerrarModalAnulacion() { m.modalAnulacion = nil }

func (m *Machine) ConfirmarAnulacion(req dto.ConfirmarAnulacionRequest) error {
	if _, err := m.ventas.ConfirmarAnulacion(req); err != nil {
		return err
	}
	m.modalAnulacion = nil
	return nil
}

// AbrirModalReclamoVenta opens the return/exchange dialog for a sale.
func (m *Machine) AbrirModalReclamoVenta(idVenta, tipo string) {
	venta, ok := m.ventas.ObtenerPorID(idVenta)
	if !ok {
		return
	}
	m.modalReclamoVenta = &ReclamoVenta{Venta: *venta, Tipo: tipo}
}

func (m *Machine) CerrarModalReclamoVenta() { m.modalReclamoVenta = nil }

// ConfirmarReclamoVenta closes the dialog; the claim itself is handled
// by the incidents module.
func (m *Machine) ConfirmarReclamoVenta() {
	if m.modalReclamoVenta != nil {
		log.Info().
			Str("venta", m.modalReclamoVenta.Venta.ID).
			Str("tipo", m.modalReclamoVenta.Tipo).
			Msg("reclamo de venta confirmado")
	}
	m.modalReclamoVenta = nil
}

// ── Navegación interna del módulo ─────────────────────────────────────────────

func (m *Machine) IrAVentas() { m.Navegar(screen.MainContent) }

func (m *Machine) IrAPagos() { m.Navegar(screen.PaymentsView) }

func (m *Machine) IrAReclamosVenta() { m.Navegar(screen.ClaimsView) }

func (m *Machine) IrAReportesVenta() { m.Navegar(screen.VentasReportsView) }
