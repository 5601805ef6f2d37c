package service

import (
	"fmt"
	"time"

	"gescom/internal/apperror"
	"gescom/internal/dto"
	"gescom/internal/model"
	"gescom/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type VentaService interface {
	RegistrarVenta(req dto.RegistrarVentaRequest) (*model.VentaDetalle, error)
	ConfirmarPago(req dto.ConfirmarPagoRequest) error
	ConfirmarAnulacion(req dto.ConfirmarAnulacionRequest) (*model.Anulacion, error)
	ObtenerPorID(id string) (*model.VentaDetalle, bool)
	Listar() []model.VentaDetalle
	ListarAnulaciones() []model.Anulacion
	ListarDevoluciones() []model.Devolucion
	ListarCambios() []model.Cambio

	// Derived views, memoized on the sales collection version.
	ResumenVentas() []model.ResumenVenta
	PagosRealizados() []model.PagoRealizado
	PagosPendientes() []model.PagoPendiente
}

type ventaService struct {
	ventas       *store.Collection[model.VentaDetalle]
	anulaciones  *store.Collection[model.Anulacion]
	devoluciones *store.Collection[model.Devolucion]
	cambios      *store.Collection[model.Cambio]

	ahora func() time.Time

	memoVersion    uint64
	memoValido     bool
	memoResumen    []model.ResumenVenta
	memoRealizados []model.PagoRealizado
	memoPendientes []model.PagoPendiente
}

func NewVentaService(
	ventas *store.Collection[model.VentaDetalle],
	anulaciones *store.Collection[model.Anulacion],
	devoluciones *store.Collection[model.Devolucion],
	cambios *store.Collection[model.Cambio],
) VentaService {
	return &ventaService{
		ventas:       ventas,
		anulaciones:  anulaciones,
		devoluciones: devoluciones,
		cambios:      cambios,
		ahora:        time.Now,
	}
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// Prepends the new sale so lists render newest-first.

func (s *ventaService) RegistrarVenta(req dto.RegistrarVentaRequest) (*model.VentaDetalle, error) {
	if err := dto.Validar(req); err != nil {
		return nil, err
	}
	if _, ok := s.ObtenerPorID(req.ID); ok {
		return nil, apperror.New("ya existe una venta con ese id")
	}

	cuotas := make([]model.Cuota, 0, len(req.Cuotas))
	for _, c := range req.Cuotas {
		cuotas = append(cuotas, model.Cuota{
			Numero:           c.Numero,
			FechaVencimiento: c.FechaVencimiento,
			Monto:            c.Monto,
		})
	}
	venta := model.VentaDetalle{
		ID:          req.ID,
		Fecha:       req.Fecha,
		Cliente:     req.Cliente,
		Vendedor:    req.Vendedor,
		MontoTotal:  req.MontoTotal,
		MetodoPago:  req.MetodoPago,
		TotalCuotas: req.TotalCuotas,
		Cuotas:      cuotas,
		Estado:      model.VentaPendiente,
	}
	s.ventas.Prepend(venta)

	log.Info().Str("id", venta.ID).Str("cliente", venta.Cliente).Msg("venta registrada")
	return &venta, nil
}

// ── ConfirmarPago ─────────────────────────────────────────────────────────────
// Advances the paid-installment counter; the sale becomes Pagada when
// the counter reaches the schedule length. Installment-level payment
// details beyond the counter are not persisted.

func (s *ventaService) ConfirmarPago(req dto.ConfirmarPagoRequest) error {
	if err := dto.Validar(req); err != nil {
		return err
	}

	matched := s.ventas.Update(
		func(v model.VentaDetalle) bool { return v.ID == req.IDVenta },
		func(v model.VentaDetalle) model.VentaDetalle {
			v.CuotasPagadas++
			if v.CuotasPagadas == v.TotalCuotas {
				v.Estado = model.VentaPagada
			}
			return v
		},
	)
	if matched == 0 {
		log.Debug().Str("id", req.IDVenta).Msg("confirmar pago: venta no encontrada")
		return nil
	}

	log.Info().Str("id", req.IDVenta).Int("cuota", req.NumeroCuota).Msg("pago de cuota confirmado")
	return nil
}

// ── ConfirmarAnulacion ────────────────────────────────────────────────────────
// Sets the sale to Anulada and prepends an annulment record whose
// cliente, vendedor and monto come from the sale itself.

func (s *ventaService) ConfirmarAnulacion(req dto.ConfirmarAnulacionRequest) (*model.Anulacion, error) {
	if err := dto.Validar(req); err != nil {
		return nil, err
	}
	venta, ok := s.ObtenerPorID(req.IDVenta)
	if !ok {
		return nil, fmt.Errorf("venta %s: %w", req.IDVenta, apperror.ErrNoEncontrado)
	}
	if venta.Estado == model.VentaAnulada {
		return nil, apperror.New("la venta ya está anulada")
	}

	s.ventas.Update(
		func(v model.VentaDetalle) bool { return v.ID == req.IDVenta },
		func(v model.VentaDetalle) model.VentaDetalle {
			v.Estado = model.VentaAnulada
			return v
		},
	)

	anulacion := model.Anulacion{
		ID:       s.anulaciones.NextID(),
		IDVenta:  venta.ID,
		Fecha:    s.ahora().Format(fechaCorta),
		Cliente:  venta.Cliente,
		Vendedor: venta.Vendedor,
		Monto:    venta.MontoTotal,
		Motivo:   req.Motivo,
	}
	s.anulaciones.Prepend(anulacion)

	log.Info().Str("venta", venta.ID).Str("anulacion", anulacion.ID).Msg("venta anulada")
	return &anulacion, nil
}

// ── Vistas derivadas ──────────────────────────────────────────────────────────
// Recomputed only when the sales collection version changes; the three
// views share one memo pass since they derive from the same source.

func (s *ventaService) refrescarDerivados() {
	if s.memoValido && s.ventas.Version() == s.memoVersion {
		return
	}

	ventas := s.ventas.Items()
	resumen := make([]model.ResumenVenta, 0, len(ventas))
	var realizados []model.PagoRealizado
	var pendientes []model.PagoPendiente

	for _, v := range ventas {
		resumen = append(resumen, model.ResumenVenta{
			ID:         v.ID,
			Cliente:    v.Cliente,
			Fecha:      v.Fecha,
			MontoTotal: v.MontoTotal,
			Progreso:   fmt.Sprintf("%d/%d", v.CuotasPagadas, v.TotalCuotas),
			Estado:     v.Estado,
		})

		for n := 1; n <= v.TotalCuotas; n++ {
			monto := s.montoCuota(v, n)
			if n <= v.CuotasPagadas {
				realizados = append(realizados, model.PagoRealizado{
					IDVenta:     v.ID,
					Cliente:     v.Cliente,
					NumeroCuota: n,
					Monto:       monto,
				})
				continue
			}
			if v.Estado == model.VentaAnulada {
				continue
			}
			pendientes = append(pendientes, model.PagoPendiente{
				IDVenta:          v.ID,
				Cliente:          v.Cliente,
				NumeroCuota:      n,
				Monto:            monto,
				FechaVencimiento: s.vencimientoCuota(v, n),
			})
		}
	}

	s.memoVersion = s.ventas.Version()
	s.memoValido = true
	s.memoResumen = resumen
	s.memoRealizados = realizados
	s.memoPendientes = pendientes
}

// montoCuota prefers the scheduled installment amount and falls back to
// an even split of the sale total.
func (s *ventaService) montoCuota(v model.VentaDetalle, numero int) decimal.Decimal {
	for _, c := range v.Cuotas {
		if c.Numero == numero {
			return c.Monto
		}
	}
	if v.TotalCuotas == 0 {
		return decimal.Zero
	}
	return v.MontoTotal.Div(decimal.NewFromInt(int64(v.TotalCuotas))).Round(2)
}

func (s *ventaService) vencimientoCuota(v model.VentaDetalle, numero int) string {
	for _, c := range v.Cuotas {
		if c.Numero == numero {
			return c.FechaVencimiento
		}
	}
	return ""
}

func (s *ventaService) ResumenVentas() []model.ResumenVenta {
	s.refrescarDerivados()
	return s.memoResumen
}

func (s *ventaService) PagosRealizados() []model.PagoRealizado {
	s.refrescarDerivados()
	return s.memoRealizados
}

func (s *ventaService) PagosPendientes() []model.PagoPendiente {
	s.refrescarDerivados()
	return s.memoPendientes
}

func (s *ventaService) ObtenerPorID(id string) (*model.VentaDetalle, bool) {
	v, ok := s.ventas.Find(func(v model.VentaDetalle) bool { return v.ID == id })
	if !ok {
		return nil, false
	}
	return &v, true
}

func (s *ventaService) Listar() []model.VentaDetalle { return s.ventas.Items() }

func (s *ventaService) ListarAnulaciones() []model.Anulacion { return s.anulaciones.Items() }

func (s *ventaService) ListarDevoluciones() []model.Devolucion { return s.devoluciones.Items() }

func (s *ventaService) ListarCambios() []model.Cambio { return s.cambios.Items() }
