// Package app implements the application state machine: the single owner
// of every entity collection, the current screen, the transient
// selections and the modal descriptors. Presentational consumers submit
// named intents and read back snapshots; every transition runs to
// completion before the next intent is processed.
package app

import (
	"gescom/internal/config"
	"gescom/internal/dto"
	"gescom/internal/fixtures"
	"gescom/internal/model"
	"gescom/internal/screen"
	"gescom/internal/service"
	"gescom/internal/store"

	"github.com/rs/zerolog/log"
)

// SeleccionRecepcion pins the reception being validated together with
// its parent order and display serial.
type SeleccionRecepcion struct {
	IDOrden     string
	IDRecepcion string
	Serial      int
}

// ReclamoVenta describes the open return/exchange dialog.
type ReclamoVenta struct {
	Venta model.VentaDetalle
	Tipo  string // "return" | "exchange"
}

// Machine is the application state machine.
type Machine struct {
	almacen *store.Almacen

	proveedores  service.ProveedorService
	productos    service.ProductoService
	pedidos      service.PedidoService
	cotizaciones service.CotizacionService
	recepciones  service.RecepcionService
	reclamos     service.ReclamoService
	ventas       service.VentaService
	clientes     service.ClienteService

	pantalla  screen.Screen
	historial *screen.Historial

	// Selections that survive navigation until overwritten.
	proveedorSel string
	productoSel  string
	pedidoSel    string
	solicitudSel string
	ordenSel     string
	recepcionSel *SeleccionRecepcion
	clienteSel   string
	maestroSel   string
	reporteSel   string
	tipoExito    string // "cliente" | "maestro"

	// Transient sales selections — reset unconditionally on every
	// navigation, regardless of destination.
	ventaSel          string
	registrandoVenta  bool
	viendoPagoDe      string
	reciboCuota       *model.Cuota
	registrandoPagoDe *model.PagoPendiente

	cajaAbierta bool
	modalCaja   string // "open" | "close" | ""

	modalConfirmacion   dto.ConfirmacionModal
	modalPostCotizacion dto.PostCotizacionModal
	modalAnulacion      *model.VentaDetalle
	modalReclamoVenta   *ReclamoVenta
}

// New builds the machine with empty collections. Seed fixtures via
// cfg.SeedFixtures or store.Almacen directly in tests.
func New(cfg *config.Config) *Machine {
	alm := store.NewAlmacen()
	if cfg.SeedFixtures {
		fixtures.Cargar(alm)
	}

	m := &Machine{
		almacen:      alm,
		proveedores:  service.NewProveedorService(alm.Proveedores),
		productos:    service.NewProductoService(alm.Productos),
		pedidos:      service.NewPedidoService(alm.Pedidos),
		cotizaciones: service.NewCotizacionService(alm.Solicitudes, alm.Pedidos, alm.OrdenesCompra),
		recepciones:  service.NewRecepcionService(alm.OrdenesCompra, alm.PedidosTransporte),
		reclamos:     service.NewReclamoService(alm.Incidencias, alm.Reclamos),
		ventas:       service.NewVentaService(alm.Ventas, alm.Anulaciones, alm.Devoluciones, alm.Cambios),
		clientes:     service.NewClienteService(alm.Clientes, alm.Maestros, alm.Reportes),
		pantalla:     screen.MainMenu,
		historial:    screen.NewHistorial(cfg.NavHistoryLimit),
	}
	return m
}

// Almacen exposes the collections for fixture seeding in tests.
func (m *Machine) Almacen() *store.Almacen { return m.almacen }

// Pantalla reports the current screen.
func (m *Machine) Pantalla() screen.Screen { return m.pantalla }

// ── Navegación ────────────────────────────────────────────────────────────────

// Navegar switches screens through the unconditional navigation guard:
// the transient sales selections reset to empty no matter which screen
// is entered. Invoking it twice with the same destination yields the
// same transient state as invoking it once.
func (m *Machine) Navegar(destino screen.Screen) {
	m.limpiarTransitorias()
	if m.pantalla != destino {
		m.historial.Push(m.pantalla)
	}
	m.pantalla = destino
	log.Debug().Str("pantalla", string(destino)).Msg("navegación")
}

// Atras pops the navigation history; reports false when there is no
// prior screen.
func (m *Machine) Atras() bool {
	previa, ok := m.historial.Pop()
	if !ok {
		return false
	}
	m.limpiarTransitorias()
	m.pantalla = previa
	return true
}

func (m *Machine) limpiarTransitorias() {
	m.ventaSel = ""
	m.registrandoVenta = false
	m.viendoPagoDe = ""
	m.reciboCuota = nil
	m.registrandoPagoDe = nil
}

// ── Modales globales ──────────────────────────────────────────────────────────

func (m *Machine) abrirConfirmacion(titulo, mensaje string, alCerrar func()) {
	m.modalConfirmacion = dto.ConfirmacionModal{
		Abierto: true,
		Titulo:  titulo,
		Mensaje: mensaje,
		OnClose: func() {
			m.modalConfirmacion = dto.ConfirmacionModal{}
			if alCerrar != nil {
				alCerrar()
			}
		},
	}
}

// ModalConfirmacion returns the confirmation dialog descriptor.
func (m *Machine) ModalConfirmacion() dto.ConfirmacionModal { return m.modalConfirmacion }

// ModalPostCotizacion returns the post-quote dialog descriptor.
func (m *Machine) ModalPostCotizacion() dto.PostCotizacionModal { return m.modalPostCotizacion }
