package main

import (
	"os"
	"time"

	"gescom/internal/app"
	"gescom/internal/config"
	"gescom/internal/dto"
	"gescom/internal/screen"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	m := app.New(cfg)
	log.Info().
		Bool("fixtures", cfg.SeedFixtures).
		Str("pantalla", string(m.Pantalla())).
		Msg("gescom iniciado")

	// A scripted session exercising each module end to end. There is no
	// interactive front end in this build; presentational consumers call
	// the same methods.
	if err := sesionDemo(m); err != nil {
		log.Fatal().Err(err).Msg("sesión de demostración falló")
	}

	snap := m.Snapshot()
	log.Info().
		Int("proveedores", len(snap.Proveedores)).
		Int("solicitudes", len(snap.Solicitudes)).
		Int("ordenes", len(snap.Ordenes)).
		Int("reclamos", len(snap.Reclamos)).
		Int("ventas", len(snap.ResumenVentas)).
		Msg("sesión completada")
}

func sesionDemo(m *app.Machine) error {
	// Abastecimiento: registrar un proveedor en dos pasos.
	m.Navegar(screen.ProvidersList)
	m.IniciarRegistroProveedor()
	if err := m.ContinuarPaso2(dto.PerfilProveedorRequest{
		RazonSocial: "Aceros del Centro S.A.",
		RUC:         "20487512639",
		Direccion:   "Av. Industrial 890, Huancayo",
		Telefono:    "064-233415",
		Email:       "ventas@acerosdelcentro.pe",
	}); err != nil {
		return err
	}
	if err := m.GuardarProveedor(dto.GuardarProveedorRequest{
		Productos: []dto.ProductoOfrecidoRequest{
			{Nombre: "Fierro corrugado 1/2\"", UnidadMedida: "Varilla 9m", PrecioReferencial: decimal.NewFromFloat(32.50)},
		},
	}); err != nil {
		return err
	}

	// Cotizaciones: agrupar los ítems pendientes del pedido revisado.
	m.Navegar(screen.PedidosList)
	m.Navegar(screen.GroupItemsForQuotation)
	pendientes := m.Snapshot().ItemsPendientes
	if len(pendientes) > 0 {
		if err := m.GenerarSolicitud(pendientes); err != nil {
			return err
		}
		m.Snapshot().ModalConfirmacion.OnClose()
	}

	// Recepciones: programar un recojo con transporte propio.
	m.Navegar(screen.OrdersList)
	m.IniciarProgramacionRecepcion("OC-001")
	if err := m.ConfirmarRecepcion(dto.ProgramarRecepcionRequest{
		IDOrden:            "OC-001",
		ModalidadLogistica: "Recojo por Transporte Propio",
		Fecha:              "05-09-2026",
		Hora:               "09:00",
		RecursoAsignado:    "Camión C-12",
		Items: []dto.ItemRecepcionRequest{
			{NombreProducto: "Cemento Portland", CantidadProgramada: 200, UnidadMedida: "Bolsa 42.5kg"},
		},
	}); err != nil {
		return err
	}
	m.Snapshot().ModalConfirmacion.OnClose()

	// Reclamos: consolidar las incidencias abiertas.
	m.Navegar(screen.IncidentsList)
	if err := m.GenerarReclamo(dto.GenerarReclamoRequest{
		IncidenciasIDs:   []string{"INC-001", "INC-002"},
		Observacion:      "Se solicita reposición de las 13 bolsas afectadas.",
		AccionCorrectiva: "Reemplazo de Producto",
	}); err != nil {
		return err
	}
	m.Snapshot().ModalConfirmacion.OnClose()

	// Ventas: confirmar una cuota y anular la venta al contado.
	m.IrAVentas()
	if err := m.ConfirmarPago(dto.ConfirmarPagoRequest{IDVenta: "V-001", NumeroCuota: 3}); err != nil {
		return err
	}
	m.AbrirModalAnulacion("V-002")
	if err := m.ConfirmarAnulacion(dto.ConfirmarAnulacionRequest{
		IDVenta: "V-002",
		Motivo:  "Cliente desistió de la compra",
	}); err != nil {
		return err
	}
	m.Navegar(screen.MainMenu)
	return nil
}
