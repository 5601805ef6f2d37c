package app

import (
	"testing"

	"gescom/internal/config"
	"gescom/internal/dto"
	"gescom/internal/screen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maquinaDePrueba(t *testing.T) *Machine {
	t.Helper()
	return New(&config.Config{
		Env:             "development",
		SeedFixtures:    true,
		NavHistoryLimit: 8,
	})
}

func TestGuardiaDeNavegacionLimpiaTransitorias(t *testing.T) {
	m := maquinaDePrueba(t)
	m.Navegar(screen.MainContent)

	m.SeleccionarVenta("V-001")
	m.VerCronogramaPago("V-001")
	require.NotNil(t, m.VentaSeleccionada())

	m.Navegar(screen.PaymentsView)

	snap := m.Snapshot()
	assert.Nil(t, snap.VentaSel)
	assert.Empty(t, snap.ViendoPagoDe)
	assert.False(t, snap.RegistrandoVenta)
	assert.Nil(t, snap.ReciboCuota)
	assert.Nil(t, snap.RegistrandoPagoDe)
}

func TestGuardiaDeNavegacionIdempotente(t *testing.T) {
	m := maquinaDePrueba(t)
	m.Navegar(screen.MainContent)
	m.SeleccionarVenta("V-001")

	m.Navegar(screen.SalesTable)
	una := m.Snapshot()

	m.Navegar(screen.SalesTable)
	dos := m.Snapshot()

	// Navigating to the same screen twice yields the same transient state
	// as navigating once, and never grows the history.
	assert.Equal(t, una.Pantalla, dos.Pantalla)
	assert.Equal(t, una.VentaSel, dos.VentaSel)
	assert.Equal(t, una.ViendoPagoDe, dos.ViendoPagoDe)
	assert.Equal(t, una.RegistrandoVenta, dos.RegistrandoVenta)

	require.True(t, m.Atras())
	assert.Equal(t, screen.MainContent, m.Pantalla())
}

func TestSeleccionDeVentaAlterna(t *testing.T) {
	m := maquinaDePrueba(t)
	m.Navegar(screen.MainContent)

	m.SeleccionarVenta("V-001")
	require.NotNil(t, m.VentaSeleccionada())

	// Selecting the same sale again closes the detail panel.
	m.SeleccionarVenta("V-001")
	assert.Nil(t, m.VentaSeleccionada())

	m.SeleccionarVenta("V-001")
	m.SeleccionarVenta("V-002")
	venta := m.VentaSeleccionada()
	require.NotNil(t, venta)
	assert.Equal(t, "V-002", venta.ID)
}

func TestFlujoProveedorDosPasos(t *testing.T) {
	m := maquinaDePrueba(t)
	m.Navegar(screen.ProvidersList)

	m.IniciarRegistroProveedor()
	assert.Equal(t, screen.ProviderFormStep1, m.Pantalla())

	require.NoError(t, m.ContinuarPaso2(dto.PerfilProveedorRequest{
		RazonSocial: "Aceros del Centro S.A.",
		RUC:         "20487512639",
		Telefono:    "064-233415",
	}))
	assert.Equal(t, screen.ProviderFormStep2, m.Pantalla())

	require.NoError(t, m.GuardarProveedor(dto.GuardarProveedorRequest{
		Productos: []dto.ProductoOfrecidoRequest{
			{Nombre: "Fierro corrugado", UnidadMedida: "Varilla 9m"},
		},
	}))
	assert.Equal(t, screen.ProvidersList, m.Pantalla())
	assert.Len(t, m.Snapshot().Proveedores, 3)
}

func TestGenerarSolicitudAbreModalYNavegaAlCerrar(t *testing.T) {
	m := maquinaDePrueba(t)
	m.Navegar(screen.GroupItemsForQuotation)

	pendientes := m.Snapshot().ItemsPendientes
	require.NotEmpty(t, pendientes)

	require.NoError(t, m.GenerarSolicitud(pendientes))

	modal := m.ModalConfirmacion()
	require.True(t, modal.Abierto)
	assert.Equal(t, screen.GroupItemsForQuotation, m.Pantalla())

	modal.OnClose()
	assert.False(t, m.ModalConfirmacion().Abierto)
	assert.Equal(t, screen.SolicitudesList, m.Pantalla())
	assert.Len(t, m.Snapshot().Solicitudes, 1)
}

func TestGuardarCotizacionModalPostAccion(t *testing.T) {
	m := maquinaDePrueba(t)
	m.Navegar(screen.GroupItemsForQuotation)
	require.NoError(t, m.GenerarSolicitud(m.Snapshot().ItemsPendientes))
	m.ModalConfirmacion().OnClose()

	solicitud := m.Snapshot().Solicitudes[0]
	m.IniciarRegistroCotizacion(solicitud.IDSolicitud)
	assert.Equal(t, screen.RegisterQuote, m.Pantalla())

	registrar := func() {
		require.NoError(t, m.GuardarCotizacion(dto.RegistrarCotizacionRequest{
			IDProveedor:     "PROV-01",
			NombreProveedor: "Ferretería Industrial del Sur S.A.C.",
			ModalidadPago:   "Contado",
			Items: []dto.ItemCotizadoRequest{
				{IDItem: solicitud.Items[0].IDItem.String(), NombreProducto: "Tornillos", CantidadRequerida: 50},
			},
		}))
	}

	registrar()
	modal := m.ModalPostCotizacion()
	require.True(t, modal.Abierto)

	// "Add another" keeps the quote form open for the same solicitud.
	modal.OnAddAnother()
	assert.False(t, m.ModalPostCotizacion().Abierto)
	assert.Equal(t, screen.RegisterQuote, m.Pantalla())

	registrar()
	m.ModalPostCotizacion().OnFinish()
	assert.Equal(t, screen.SolicitudesList, m.Pantalla())
	assert.Nil(t, m.Snapshot().SolicitudSel)
}

func TestConfirmarRecepcionNavegaALista(t *testing.T) {
	m := maquinaDePrueba(t)
	m.Navegar(screen.OrdersList)
	m.IniciarProgramacionRecepcion("OC-001")
	assert.Equal(t, screen.ScheduleReceptionForm, m.Pantalla())

	require.NoError(t, m.ConfirmarRecepcion(dto.ProgramarRecepcionRequest{
		IDOrden:            "OC-001",
		ModalidadLogistica: "Recojo por Transporte Propio",
		Fecha:              "05-09-2026",
		Hora:               "09:00",
		Items: []dto.ItemRecepcionRequest{
			{NombreProducto: "Cemento Portland", CantidadProgramada: 200},
		},
	}))

	m.ModalConfirmacion().OnClose()
	assert.Equal(t, screen.ScheduleReceptionsList, m.Pantalla())
	assert.Len(t, m.Snapshot().Transporte, 1)
}

func TestConfirmarGuiasSinCoincidenciaNoAbreModal(t *testing.T) {
	m := maquinaDePrueba(t)
	m.IniciarValidacionGuias("OC-001", "REC-001-99", 99)
	assert.Equal(t, screen.RemissionGuideValidation, m.Pantalla())

	require.NoError(t, m.ConfirmarGuias(dto.ValidarGuiasRequest{
		IDOrden:     "OC-001",
		IDRecepcion: "REC-001-99",
		Guias:       []dto.GuiaRemisionRequest{{NumeroGuia: "G-00017"}},
	}))

	assert.False(t, m.ModalConfirmacion().Abierto)
	assert.Equal(t, screen.RemissionGuideValidation, m.Pantalla())
}

func TestAnulacionDesdeElModal(t *testing.T) {
	m := maquinaDePrueba(t)
	m.IrAVentas()

	m.AbrirModalAnulacion("V-002")
	require.NotNil(t, m.Snapshot().ModalAnulacion)

	require.NoError(t, m.ConfirmarAnulacion(dto.ConfirmarAnulacionRequest{
		IDVenta: "V-002",
		Motivo:  "Cliente desistió de la compra",
	}))

	snap := m.Snapshot()
	assert.Nil(t, snap.ModalAnulacion)
	require.NotEmpty(t, snap.Anulaciones)
	assert.Equal(t, "Rosa Quispe", snap.Anulaciones[0].Cliente)
}

func TestModalCaja(t *testing.T) {
	m := maquinaDePrueba(t)
	m.IrAVentas()

	m.AlternarModalCaja()
	assert.Equal(t, "open", m.Snapshot().ModalCaja)

	m.ConfirmarAccionCaja()
	assert.True(t, m.CajaAbierta())
	assert.Empty(t, m.Snapshot().ModalCaja)

	m.AlternarModalCaja()
	assert.Equal(t, "close", m.Snapshot().ModalCaja)
	m.CerrarModalCaja()
	assert.True(t, m.CajaAbierta())
}

func TestReclamoDeVenta(t *testing.T) {
	m := maquinaDePrueba(t)
	m.IrAReclamosVenta()

	m.AbrirModalReclamoVenta("V-001", "return")
	modal := m.Snapshot().ModalReclamoVenta
	require.NotNil(t, modal)
	assert.Equal(t, "V-001", modal.Venta.ID)
	assert.Equal(t, "return", modal.Tipo)

	m.ConfirmarReclamoVenta()
	assert.Nil(t, m.Snapshot().ModalReclamoVenta)
}

func TestRegistroExitosoCRM(t *testing.T) {
	m := maquinaDePrueba(t)
	m.Navegar(screen.Clients)

	m.SeleccionarClienteParaMaestro("CLI-002")
	assert.Equal(t, screen.RegisterMaestro, m.Pantalla())

	m.RegistroExitoso("maestro")
	snap := m.Snapshot()
	assert.Equal(t, screen.RegistrationSuccess, snap.Pantalla)
	assert.Equal(t, "maestro", snap.TipoExito)
	require.NotNil(t, snap.ClienteSel)
	assert.Equal(t, "CLI-002", snap.ClienteSel.ID)
}

func TestAtrasSinHistorial(t *testing.T) {
	m := maquinaDePrueba(t)
	assert.False(t, m.Atras())
	assert.Equal(t, screen.MainMenu, m.Pantalla())
}
