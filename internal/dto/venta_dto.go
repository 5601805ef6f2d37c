package dto

import "github.com/shopspring/decimal"

// RegistrarVentaRequest registers a sale with its installment schedule.
// The sale id is externally assigned by the registering consumer.
type RegistrarVentaRequest struct {
	ID          string         `json:"id"           validate:"required"`
	Fecha       string         `json:"fecha"        validate:"required"`
	Cliente     string         `json:"cliente"      validate:"required"`
	Vendedor    string         `json:"vendedor"     validate:"required"`
	MontoTotal  decimal.Decimal `json:"monto_total" validate:"required"`
	MetodoPago  string         `json:"metodo_pago"`
	TotalCuotas int            `json:"total_cuotas" validate:"required,min=1"`
	Cuotas      []CuotaRequest `json:"cuotas"       validate:"dive"`
}

type CuotaRequest struct {
	Numero           int             `json:"numero"            validate:"required,min=1"`
	FechaVencimiento string          `json:"fecha_vencimiento"`
	Monto            decimal.Decimal `json:"monto"             validate:"min=0"`
}

// ConfirmarPagoRequest confirms one installment payment.
type ConfirmarPagoRequest struct {
	IDVenta     string `json:"id_venta"     validate:"required"`
	NumeroCuota int    `json:"numero_cuota" validate:"required,min=1"`
}

// ConfirmarAnulacionRequest annuls a sale with a reason.
type ConfirmarAnulacionRequest struct {
	IDVenta string `json:"id_venta" validate:"required"`
	Motivo  string `json:"motivo"   validate:"required,min=5"`
}
