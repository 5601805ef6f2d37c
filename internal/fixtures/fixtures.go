// Package fixtures seeds the entity collections with the static data the
// application starts from. All state is single-session: seeded at process
// start, discarded at process end.
package fixtures

import (
	"gescom/internal/model"
	"gescom/internal/store"

	"github.com/shopspring/decimal"
)

// Cargar seeds every collection of the almacén.
func Cargar(alm *store.Almacen) {
	alm.Proveedores.Seed(proveedores())
	alm.Productos.Seed(productos())
	alm.Pedidos.Seed(pedidos())
	alm.Solicitudes.Seed(nil)
	alm.OrdenesCompra.Seed(ordenesCompra())
	alm.Incidencias.Seed(incidencias())
	alm.Clientes.Seed(clientes())
	alm.Maestros.Seed(maestros())
	alm.Reportes.Seed(reportes())
	alm.Ventas.Seed(ventas())
	alm.Anulaciones.Seed(nil)
	alm.Devoluciones.Seed(devoluciones())
	alm.Cambios.Seed(cambios())
}

func proveedores() []model.Proveedor {
	return []model.Proveedor{
		{
			ID:          "PROV-01",
			Token:       store.NewToken(),
			RazonSocial: "Ferretería Industrial del Sur S.A.C.",
			RUC:         "20504365871",
			Direccion:   "Av. Argentina 2455, Callao",
			Telefono:    "01-4567890",
			Email:       "ventas@fisur.pe",
			Contacto:    "01-4567890",
			Productos: []model.ProductoOfrecido{
				{Nombre: "Tornillos", UnidadMedida: "Caja x100", PrecioReferencial: decimal.NewFromFloat(25.50)},
				{Nombre: "Clavos", UnidadMedida: "Caja x200", PrecioReferencial: decimal.NewFromFloat(18.00)},
			},
		},
		{
			ID:          "PROV-02",
			Token:       store.NewToken(),
			RazonSocial: "Distribuidora Cemex Andina E.I.R.L.",
			RUC:         "20603112940",
			Direccion:   "Jr. Las Calizas 120, Ate",
			Telefono:    "01-3250114",
			Email:       "pedidos@cemexandina.pe",
			Contacto:    "01-3250114",
			Productos: []model.ProductoOfrecido{
				{Nombre: "Cemento Portland", UnidadMedida: "Bolsa 42.5kg", PrecioReferencial: decimal.NewFromFloat(28.90)},
			},
		},
	}
}

func productos() []model.ProductoCatalogo {
	return []model.ProductoCatalogo{
		{IDProducto: "PROD-01", Token: store.NewToken(), Nombre: "Tornillos", Categoria: "Fijaciones", UnidadMedida: "Caja x100", PrecioReferencial: decimal.NewFromFloat(25.50)},
		{IDProducto: "PROD-02", Token: store.NewToken(), Nombre: "Cemento Portland", Categoria: "Construcción", UnidadMedida: "Bolsa 42.5kg", PrecioReferencial: decimal.NewFromFloat(28.90)},
		{IDProducto: "PROD-03", Token: store.NewToken(), Nombre: "Pintura Látex Blanca", Categoria: "Acabados", UnidadMedida: "Galón", PrecioReferencial: decimal.NewFromFloat(45.00)},
	}
}

func pedidos() []model.Pedido {
	return []model.Pedido{
		{
			IDPedido:        "PED-001",
			FechaEmision:    "10-08-2026",
			AreaSolicitante: "Almacén Central",
			EstadoPedido:    model.PedidoRevisado,
			Productos: []model.ItemPedido{
				{IDItem: store.NewToken(), NombreProducto: "Tornillos", Cantidad: 50, UnidadMedida: "Caja x100", EstadoItem: model.ItemPendienteCotizacion},
				{IDItem: store.NewToken(), NombreProducto: "Clavos", Cantidad: 30, UnidadMedida: "Caja x200", EstadoItem: model.ItemPendienteCotizacion},
			},
		},
		{
			IDPedido:        "PED-002",
			FechaEmision:    "12-08-2026",
			AreaSolicitante: "Obra Norte",
			EstadoPedido:    model.PedidoPendiente,
			Productos: []model.ItemPedido{
				{IDItem: store.NewToken(), NombreProducto: "Cemento Portland", Cantidad: 200, UnidadMedida: "Bolsa 42.5kg", EstadoItem: model.ItemPendienteCotizacion},
			},
		},
	}
}

func ordenesCompra() []model.OrdenCompra {
	return []model.OrdenCompra{
		{
			IDOrden:           "OC-001",
			IDSolicitudOrigen: "SC-000",
			IDProveedor:       "PROV-02",
			NombreProveedor:   "Distribuidora Cemex Andina E.I.R.L.",
			FechaEmision:      "01-08-2026",
			ModalidadPago:     model.PagoContado,
			MontoTotalOrden:   decimal.NewFromFloat(5780.00),
			Items: []model.OrdenCompraItem{
				{NombreProducto: "Cemento Portland", CantidadAdjudicada: 200, UnidadMedida: "Bolsa 42.5kg", MontoTotal: decimal.NewFromFloat(5780.00)},
			},
			Estado: model.OrdenEmitida,
		},
	}
}

func incidencias() []model.Incidencia {
	return []model.Incidencia{
		{IDIncidencia: "INC-001", IDOrdenCompra: "OC-001", IDRecepcion: "REC-001-1", Tipo: "Faltante", Descripcion: "10 bolsas menos que lo programado", Fecha: "20-08-2026", Estado: model.IncidenciaRegistrada},
		{IDIncidencia: "INC-002", IDOrdenCompra: "OC-001", IDRecepcion: "REC-001-1", Tipo: "Dañado", Descripcion: "3 bolsas rotas en el traslado", Fecha: "20-08-2026", Estado: model.IncidenciaRegistrada},
	}
}

func clientes() []model.Cliente {
	return []model.Cliente{
		{ID: "CLI-001", Nombre: "Constructora Pacífico S.A.", Documento: "20556677881", Telefono: "987654321", Email: "compras@cpacifico.pe", Direcciones: []string{"Av. Javier Prado 1550, San Isidro"}, Contactos: []string{"Laura Mendoza"}},
		{ID: "CLI-002", Nombre: "Rosa Quispe", Documento: "44231098", Telefono: "912345678", Email: "rosa.quispe@gmail.com", Direcciones: []string{"Calle Los Pinos 230, Surco"}, Contactos: nil},
	}
}

func maestros() []model.Maestro {
	return []model.Maestro{
		{ID: "MAE-001", IDCliente: "CLI-002", Nombre: "Julio Ramos", Especialidad: "Gasfitería", Puntos: 320},
	}
}

func reportes() []model.Reporte {
	return []model.Reporte{
		{ID: "REP-001", Titulo: "Clientes activos por zona", Periodo: "Julio 2026", Resumen: "Distribución de clientes con compras en los últimos 90 días."},
	}
}

func ventas() []model.VentaDetalle {
	return []model.VentaDetalle{
		{
			ID:          "V-001",
			Fecha:       "15-08-2026",
			Cliente:     "Constructora Pacífico S.A.",
			Vendedor:    "Pablo Torres",
			MontoTotal:  decimal.NewFromFloat(1200.00),
			MetodoPago:  "Crédito",
			TotalCuotas: 6,
			CuotasPagadas: 2,
			Cuotas: []model.Cuota{
				{Numero: 1, FechaVencimiento: "15-09-2026", Monto: decimal.NewFromFloat(200.00)},
				{Numero: 2, FechaVencimiento: "15-10-2026", Monto: decimal.NewFromFloat(200.00)},
				{Numero: 3, FechaVencimiento: "15-11-2026", Monto: decimal.NewFromFloat(200.00)},
				{Numero: 4, FechaVencimiento: "15-12-2026", Monto: decimal.NewFromFloat(200.00)},
				{Numero: 5, FechaVencimiento: "15-01-2027", Monto: decimal.NewFromFloat(200.00)},
				{Numero: 6, FechaVencimiento: "15-02-2027", Monto: decimal.NewFromFloat(200.00)},
			},
			Estado: model.VentaPendiente,
		},
		{
			ID:          "V-002",
			Fecha:       "18-08-2026",
			Cliente:     "Rosa Quispe",
			Vendedor:    "Pablo Torres",
			MontoTotal:  decimal.NewFromFloat(350.00),
			MetodoPago:  "Contado",
			TotalCuotas: 1,
			CuotasPagadas: 1,
			Cuotas: []model.Cuota{
				{Numero: 1, FechaVencimiento: "18-08-2026", Monto: decimal.NewFromFloat(350.00)},
			},
			Estado: model.VentaPagada,
		},
	}
}

func devoluciones() []model.Devolucion {
	return []model.Devolucion{
		{ID: "D-001", IDVenta: "V-002", Fecha: "19-08-2026", Producto: "Pintura Látex Blanca", Motivo: "Color distinto al solicitado"},
	}
}

func cambios() []model.Cambio {
	return []model.Cambio{
		{ID: "C-001", IDVenta: "V-001", Fecha: "20-08-2026", ProductoOriginal: "Tornillos", ProductoNuevo: "Clavos", Motivo: "Error en el pedido"},
	}
}
