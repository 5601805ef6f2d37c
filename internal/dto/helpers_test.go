package dto

import (
	"errors"
	"testing"

	"gescom/internal/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidarDevuelveEnvelopeDeValidacion(t *testing.T) {
	err := Validar(ConfirmarAnulacionRequest{IDVenta: "V-001", Motivo: "no"})
	require.Error(t, err)

	var ve *apperror.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "Motivo")
	assert.Equal(t, "min", ve.Fields["Motivo"])
}

func TestValidarAceptaDecimales(t *testing.T) {
	err := Validar(RegistrarVentaRequest{
		ID:          "V-100",
		Fecha:       "25-08-2026",
		Cliente:     "Rosa Quispe",
		Vendedor:    "Pablo Torres",
		MontoTotal:  decimal.NewFromFloat(90.00),
		TotalCuotas: 1,
	})
	assert.NoError(t, err)
}

func TestValidarModalidadLogistica(t *testing.T) {
	err := Validar(ProgramarRecepcionRequest{
		IDOrden:            "OC-001",
		ModalidadLogistica: "Courier",
		Fecha:              "05-09-2026",
		Hora:               "09:00",
		Items:              []ItemRecepcionRequest{{NombreProducto: "Cemento", CantidadProgramada: 1}},
	})
	assert.Error(t, err)
}
