package service

import (
	"testing"
	"time"

	"gescom/internal/dto"
	"gescom/internal/model"
	"gescom/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entornoCotizacion(t *testing.T) (*cotizacionService, *store.Collection[model.Pedido], *store.Collection[model.OrdenCompra]) {
	t.Helper()

	pedidos := store.New[model.Pedido]("PED-", 3)
	pedidos.Seed([]model.Pedido{
		{
			IDPedido:     "PED-001",
			EstadoPedido: model.PedidoRevisado,
			Productos: []model.ItemPedido{
				{IDItem: store.NewToken(), NombreProducto: "Tornillos", Cantidad: 50, UnidadMedida: "Caja x100", EstadoItem: model.ItemPendienteCotizacion},
				{IDItem: store.NewToken(), NombreProducto: "Clavos", Cantidad: 30, UnidadMedida: "Caja x200", EstadoItem: model.ItemPendienteCotizacion},
			},
		},
	})

	solicitudes := store.New[model.SolicitudCotizacion]("SC-", 3)
	ordenes := store.New[model.OrdenCompra]("OC-", 3)

	svc := NewCotizacionService(solicitudes, pedidos, ordenes).(*cotizacionService)
	svc.ahora = func() time.Time { return time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC) }
	return svc, pedidos, ordenes
}

func itemsPendientes(pedidos *store.Collection[model.Pedido]) []model.ItemPendiente {
	var items []model.ItemPendiente
	for _, p := range pedidos.Items() {
		for _, it := range p.Productos {
			items = append(items, model.ItemPendiente{ItemPedido: it, OrigenPedidoID: p.IDPedido})
		}
	}
	return items
}

func TestGenerarSolicitudEscenarioTornillos(t *testing.T) {
	svc, pedidos, _ := entornoCotizacion(t)

	var tornillos model.ItemPendiente
	for _, it := range itemsPendientes(pedidos) {
		if it.OrigenPedidoID == "PED-001" && it.NombreProducto == "Tornillos" {
			tornillos = it
		}
	}
	require.Equal(t, model.ItemPendienteCotizacion, tornillos.EstadoItem)

	solicitud, err := svc.GenerarSolicitud([]model.ItemPendiente{tornillos})
	require.NoError(t, err)

	assert.Equal(t, model.SolicitudGenerada, solicitud.Estado)
	require.Len(t, solicitud.Items, 1)
	assert.Equal(t, "Tornillos", solicitud.Items[0].NombreProducto)

	// The matched line flips to En Cotización; its sibling stays pending.
	pedido, _ := pedidos.Find(func(p model.Pedido) bool { return p.IDPedido == "PED-001" })
	for _, it := range pedido.Productos {
		switch it.NombreProducto {
		case "Tornillos":
			assert.Equal(t, model.ItemEnCotizacion, it.EstadoItem)
		case "Clavos":
			assert.Equal(t, model.ItemPendienteCotizacion, it.EstadoItem)
		}
	}
}

func TestGenerarSolicitudDistingueLineasHomonimas(t *testing.T) {
	svc, pedidos, _ := entornoCotizacion(t)

	// Two lines with the same product name in the same pedido; only the
	// submitted one may flip.
	duplicado := model.ItemPedido{IDItem: store.NewToken(), NombreProducto: "Tornillos", Cantidad: 10, UnidadMedida: "Caja x100", EstadoItem: model.ItemPendienteCotizacion}
	pedidos.Update(
		func(p model.Pedido) bool { return p.IDPedido == "PED-001" },
		func(p model.Pedido) model.Pedido {
			p.Productos = append(append([]model.ItemPedido{}, p.Productos...), duplicado)
			return p
		},
	)

	_, err := svc.GenerarSolicitud([]model.ItemPendiente{{ItemPedido: duplicado, OrigenPedidoID: "PED-001"}})
	require.NoError(t, err)

	pedido, _ := pedidos.Find(func(p model.Pedido) bool { return p.IDPedido == "PED-001" })
	flipped := 0
	for _, it := range pedido.Productos {
		if it.EstadoItem == model.ItemEnCotizacion {
			flipped++
			assert.Equal(t, duplicado.IDItem, it.IDItem)
		}
	}
	assert.Equal(t, 1, flipped)
}

func TestGenerarSolicitudExcluyeItemsYaEnCotizacion(t *testing.T) {
	svc, pedidos, _ := entornoCotizacion(t)
	items := itemsPendientes(pedidos)

	_, err := svc.GenerarSolicitud(items)
	require.NoError(t, err)

	// A line item belongs to at most one open request.
	_, err = svc.GenerarSolicitud(itemsPendientes(pedidos))
	assert.Error(t, err)
}

func TestAdjudicarConservaMontosYAgrupa(t *testing.T) {
	svc, pedidos, ordenes := entornoCotizacion(t)
	solicitud, err := svc.GenerarSolicitud(itemsPendientes(pedidos))
	require.NoError(t, err)

	selecciones := []dto.SeleccionAdjudicada{
		{
			IDItem:          solicitud.Items[0].IDItem.String(),
			IDProveedor:     "PROV-01",
			NombreProveedor: "Ferretería Industrial del Sur S.A.C.",
			ModalidadPago:   "Contado",
			NombreProducto:  "Tornillos",
			Cantidad:        50,
			UnidadMedida:    "Caja x100",
			Monto:           decimal.NewFromFloat(1275.00),
		},
		{
			IDItem:          solicitud.Items[1].IDItem.String(),
			IDProveedor:     "PROV-01",
			NombreProveedor: "Ferretería Industrial del Sur S.A.C.",
			ModalidadPago:   "Crédito",
			NombreProducto:  "Clavos",
			Cantidad:        30,
			UnidadMedida:    "Caja x200",
			Monto:           decimal.NewFromFloat(540.00),
		},
	}

	nuevas, err := svc.Adjudicar(dto.AdjudicarRequest{IDSolicitud: solicitud.IDSolicitud, Selecciones: selecciones})
	require.NoError(t, err)

	// One order per distinct (proveedor, modalidad) pair.
	assert.Len(t, nuevas, 2)
	assert.Equal(t, 2, ordenes.Len())

	// Conservation: order totals sum to the adjudicated amounts.
	totalSelecciones := decimal.Zero
	for _, sel := range selecciones {
		totalSelecciones = totalSelecciones.Add(sel.Monto)
	}
	totalOrdenes := decimal.Zero
	for _, oc := range nuevas {
		totalOrdenes = totalOrdenes.Add(oc.MontoTotalOrden)
	}
	assert.True(t, totalSelecciones.Equal(totalOrdenes))

	actualizada, _ := svc.ObtenerPorID(solicitud.IDSolicitud)
	assert.Equal(t, model.SolicitudAdjudicada, actualizada.Estado)
}

func TestAdjudicarAgrupaMismoProveedorYModalidad(t *testing.T) {
	svc, pedidos, _ := entornoCotizacion(t)
	solicitud, err := svc.GenerarSolicitud(itemsPendientes(pedidos))
	require.NoError(t, err)

	selecciones := []dto.SeleccionAdjudicada{
		{IDItem: solicitud.Items[0].IDItem.String(), IDProveedor: "PROV-01", NombreProveedor: "Fisur", ModalidadPago: "Contado", NombreProducto: "Tornillos", Cantidad: 50, Monto: decimal.NewFromFloat(1275.00)},
		{IDItem: solicitud.Items[1].IDItem.String(), IDProveedor: "PROV-01", NombreProveedor: "Fisur", ModalidadPago: "Contado", NombreProducto: "Clavos", Cantidad: 30, Monto: decimal.NewFromFloat(540.00)},
	}

	nuevas, err := svc.Adjudicar(dto.AdjudicarRequest{IDSolicitud: solicitud.IDSolicitud, Selecciones: selecciones})
	require.NoError(t, err)

	require.Len(t, nuevas, 1)
	assert.Len(t, nuevas[0].Items, 2)
	assert.True(t, nuevas[0].MontoTotalOrden.Equal(decimal.NewFromFloat(1815.00)))
}

func TestRegistrarCotizacionAvanzaEstado(t *testing.T) {
	svc, pedidos, _ := entornoCotizacion(t)
	solicitud, err := svc.GenerarSolicitud(itemsPendientes(pedidos))
	require.NoError(t, err)

	actualizada, err := svc.RegistrarCotizacion(solicitud.IDSolicitud, dto.RegistrarCotizacionRequest{
		IDProveedor:     "PROV-01",
		NombreProveedor: "Ferretería Industrial del Sur S.A.C.",
		ModalidadPago:   "Contado",
		PlazoEntrega:    "5 días",
		Items: []dto.ItemCotizadoRequest{
			{IDItem: solicitud.Items[0].IDItem.String(), NombreProducto: "Tornillos", CantidadRequerida: 50, PrecioUnitario: decimal.NewFromFloat(25.50)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, model.SolicitudCotizada, actualizada.Estado)
	require.Len(t, actualizada.CotizacionesRecibidas, 1)
	ofertado := actualizada.CotizacionesRecibidas[0].Items[0].MontoTotalOfertado
	assert.True(t, ofertado.Equal(decimal.NewFromFloat(1275.00)))
}

func TestRegistrarCotizacionSolicitudInexistente(t *testing.T) {
	svc, _, _ := entornoCotizacion(t)

	_, err := svc.RegistrarCotizacion("SC-999", dto.RegistrarCotizacionRequest{
		IDProveedor:     "PROV-01",
		NombreProveedor: "Fisur",
		ModalidadPago:   "Contado",
		Items: []dto.ItemCotizadoRequest{
			{IDItem: "x", NombreProducto: "Tornillos", CantidadRequerida: 1, PrecioUnitario: decimal.NewFromFloat(1)},
		},
	})
	assert.Error(t, err)
}
