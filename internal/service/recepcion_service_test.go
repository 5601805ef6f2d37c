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

func entornoRecepcion(t *testing.T) (*recepcionService, *store.Collection[model.OrdenCompra], *store.Collection[model.PedidoTransporte]) {
	t.Helper()

	ordenes := store.New[model.OrdenCompra]("OC-", 3)
	ordenes.Seed([]model.OrdenCompra{
		{
			IDOrden:         "OC-001",
			IDProveedor:     "PROV-02",
			NombreProveedor: "Distribuidora Cemex Andina E.I.R.L.",
			ModalidadPago:   model.PagoContado,
			MontoTotalOrden: decimal.NewFromFloat(5780.00),
			Estado:          model.OrdenEmitida,
		},
	})
	transporte := store.New[model.PedidoTransporte]("PT-", 3)

	svc := NewRecepcionService(ordenes, transporte).(*recepcionService)
	svc.ahora = func() time.Time { return time.Date(2026, 9, 5, 8, 30, 0, 0, time.UTC) }
	return svc, ordenes, transporte
}

func requisicionBase(modalidad string) dto.ProgramarRecepcionRequest {
	return dto.ProgramarRecepcionRequest{
		IDOrden:            "OC-001",
		ModalidadLogistica: modalidad,
		Fecha:              "05-09-2026",
		Hora:               "09:00",
		Items: []dto.ItemRecepcionRequest{
			{NombreProducto: "Cemento Portland", CantidadProgramada: 200, UnidadMedida: "Bolsa 42.5kg"},
		},
	}
}

func TestProgramarEntregaEnAlmacen(t *testing.T) {
	svc, ordenes, transporte := entornoRecepcion(t)

	recepcion, pt, err := svc.Programar(requisicionBase("Entrega en Almacén"))
	require.NoError(t, err)

	assert.Equal(t, "REC-001-1", recepcion.IDRecepcion)
	assert.Equal(t, model.RecepcionPendiente, recepcion.Estado)
	assert.Nil(t, pt)
	assert.Zero(t, transporte.Len())

	orden, _ := ordenes.Find(func(oc model.OrdenCompra) bool { return oc.IDOrden == "OC-001" })
	assert.Equal(t, model.OrdenProgramada, orden.Estado)
	require.Len(t, orden.Recepciones, 1)
}

func TestProgramarRecojoCreaPedidoTransporte(t *testing.T) {
	svc, _, transporte := entornoRecepcion(t)

	recepcion, pt, err := svc.Programar(requisicionBase("Recojo por Transporte Propio"))
	require.NoError(t, err)

	// Exactly one transport order, referencing the new reception.
	require.NotNil(t, pt)
	assert.Equal(t, 1, transporte.Len())
	assert.Equal(t, recepcion.IDRecepcion, pt.IDRecepcionOrigen)
	assert.Equal(t, "OC-001", pt.IDOrdenCompra)
}

func TestProgramarNumeracionSecuencialPorOrden(t *testing.T) {
	svc, _, _ := entornoRecepcion(t)

	r1, _, err := svc.Programar(requisicionBase("Entrega en Almacén"))
	require.NoError(t, err)
	r2, _, err := svc.Programar(requisicionBase("Entrega en Almacén"))
	require.NoError(t, err)

	assert.Equal(t, "REC-001-1", r1.IDRecepcion)
	assert.Equal(t, "REC-001-2", r2.IDRecepcion)
}

func TestValidarGuiasIniciaRecepcion(t *testing.T) {
	svc, ordenes, _ := entornoRecepcion(t)
	recepcion, _, err := svc.Programar(requisicionBase("Entrega en Almacén"))
	require.NoError(t, err)

	iniciada, err := svc.ValidarGuias(dto.ValidarGuiasRequest{
		IDOrden:     "OC-001",
		IDRecepcion: recepcion.IDRecepcion,
		Guias: []dto.GuiaRemisionRequest{
			{NumeroGuia: "G-00017", Transportista: "Transportes Luna"},
		},
	})
	require.NoError(t, err)
	assert.True(t, iniciada)

	orden, _ := ordenes.Find(func(oc model.OrdenCompra) bool { return oc.IDOrden == "OC-001" })
	r := orden.Recepciones[0]
	assert.Equal(t, model.RecepcionEnCurso, r.Estado)
	assert.Equal(t, "08:30", r.HoraInicioRecepcion)
	require.Len(t, r.GuiasRemision, 1)
}

func TestValidarGuiasNoRetrocede(t *testing.T) {
	svc, _, _ := entornoRecepcion(t)
	recepcion, _, err := svc.Programar(requisicionBase("Entrega en Almacén"))
	require.NoError(t, err)

	req := dto.ValidarGuiasRequest{
		IDOrden:     "OC-001",
		IDRecepcion: recepcion.IDRecepcion,
		Guias:       []dto.GuiaRemisionRequest{{NumeroGuia: "G-00017"}},
	}
	iniciada, err := svc.ValidarGuias(req)
	require.NoError(t, err)
	require.True(t, iniciada)

	// A reception already En Curso is not matched again.
	req.Guias = []dto.GuiaRemisionRequest{{NumeroGuia: "G-00018"}}
	iniciada, err = svc.ValidarGuias(req)
	require.NoError(t, err)
	assert.False(t, iniciada)
}

func TestValidarGuiasIdInexistenteNoMuta(t *testing.T) {
	svc, ordenes, _ := entornoRecepcion(t)
	_, _, err := svc.Programar(requisicionBase("Entrega en Almacén"))
	require.NoError(t, err)
	version := ordenes.Version()

	iniciada, err := svc.ValidarGuias(dto.ValidarGuiasRequest{
		IDOrden:     "OC-001",
		IDRecepcion: "REC-001-99",
		Guias:       []dto.GuiaRemisionRequest{{NumeroGuia: "G-00017"}},
	})
	require.NoError(t, err)
	assert.False(t, iniciada)
	assert.Equal(t, version, ordenes.Version())
}
