package model

import "github.com/shopspring/decimal"

type EstadoVenta string

const (
	VentaPendiente EstadoVenta = "Pendiente"
	VentaPagada    EstadoVenta = "Pagada"
	VentaAnulada   EstadoVenta = "Anulada"
)

// VentaDetalle is a registered sale with an installment schedule.
// Payment confirmation only advances the paid-installment counter;
// installment-level payment details are not persisted.
type VentaDetalle struct {
	ID            string
	Fecha         string
	Cliente       string
	Vendedor      string
	MontoTotal    decimal.Decimal
	MetodoPago    string
	TotalCuotas   int
	CuotasPagadas int
	Cuotas        []Cuota
	Estado        EstadoVenta
}

type Cuota struct {
	Numero           int
	FechaVencimiento string
	Monto            decimal.Decimal
}

// Anulacion is appended when a sale is annulled. Cliente, Vendedor and
// Monto are resolved from the referenced sale record.
type Anulacion struct {
	ID       string
	IDVenta  string
	Fecha    string
	Cliente  string
	Vendedor string
	Monto    decimal.Decimal
	Motivo   string
}

// Devolucion and Cambio feed the sales reports screen.
type Devolucion struct {
	ID       string
	IDVenta  string
	Fecha    string
	Producto string
	Motivo   string
}

type Cambio struct {
	ID               string
	IDVenta          string
	Fecha            string
	ProductoOriginal string
	ProductoNuevo    string
	Motivo           string
}

// ─── Derived views ───────────────────────────────────────────────────────────

// ResumenVenta is the per-sale row of the sales summary.
type ResumenVenta struct {
	ID         string
	Cliente    string
	Fecha      string
	MontoTotal decimal.Decimal
	Progreso   string
	Estado     EstadoVenta
}

// PagoRealizado is one confirmed installment payment.
type PagoRealizado struct {
	IDVenta     string
	Cliente     string
	NumeroCuota int
	Monto       decimal.Decimal
}

// PagoPendiente is one installment still owed on a non-annulled sale.
type PagoPendiente struct {
	IDVenta          string
	Cliente          string
	NumeroCuota      int
	Monto            decimal.Decimal
	FechaVencimiento string
}
