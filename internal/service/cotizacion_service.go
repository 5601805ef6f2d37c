package service

import (
	"fmt"
	"time"

	"gescom/internal/apperror"
	"gescom/internal/dto"
	"gescom/internal/model"
	"gescom/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const fechaCorta = "02-01-2006"

type CotizacionService interface {
	GenerarSolicitud(items []model.ItemPendiente) (*model.SolicitudCotizacion, error)
	RegistrarCotizacion(idSolicitud string, req dto.RegistrarCotizacionRequest) (*model.SolicitudCotizacion, error)
	Adjudicar(req dto.AdjudicarRequest) ([]model.OrdenCompra, error)
	ObtenerPorID(id string) (*model.SolicitudCotizacion, bool)
	Listar() []model.SolicitudCotizacion
}

type cotizacionService struct {
	solicitudes *store.Collection[model.SolicitudCotizacion]
	pedidos     *store.Collection[model.Pedido]
	ordenes     *store.Collection[model.OrdenCompra]

	ahora func() time.Time
}

func NewCotizacionService(
	solicitudes *store.Collection[model.SolicitudCotizacion],
	pedidos *store.Collection[model.Pedido],
	ordenes *store.Collection[model.OrdenCompra],
) CotizacionService {
	return &cotizacionService{
		solicitudes: solicitudes,
		pedidos:     pedidos,
		ordenes:     ordenes,
		ahora:       time.Now,
	}
}

// ── GenerarSolicitud ──────────────────────────────────────────────────────────
// Creates one quotation request from the given pending items and flips
// every matched pedido line item to En Cotización. Items are matched by
// their IDItem, so a line item can belong to at most one open request:
// items already En Cotización are excluded from the new request.

func (s *cotizacionService) GenerarSolicitud(items []model.ItemPendiente) (*model.SolicitudCotizacion, error) {
	if len(items) == 0 {
		return nil, apperror.New("no hay ítems para cotizar")
	}

	elegibles := make([]model.ItemPendiente, 0, len(items))
	porActualizar := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		if item.EstadoItem == model.ItemEnCotizacion {
			continue
		}
		porActualizar[item.IDItem] = struct{}{}
		item.EstadoItem = model.ItemEnCotizacion
		elegibles = append(elegibles, item)
	}
	if len(elegibles) == 0 {
		return nil, apperror.New("todos los ítems ya están en cotización")
	}

	solicitud := model.SolicitudCotizacion{
		IDSolicitud:  s.solicitudes.NextID(),
		FechaEmision: s.ahora().Format(fechaCorta),
		Estado:       model.SolicitudGenerada,
		Items:        elegibles,
	}
	s.solicitudes.Append(solicitud)

	s.pedidos.Update(
		func(p model.Pedido) bool {
			for _, it := range p.Productos {
				if _, ok := porActualizar[it.IDItem]; ok {
					return true
				}
			}
			return false
		},
		func(p model.Pedido) model.Pedido {
			productos := make([]model.ItemPedido, len(p.Productos))
			for i, it := range p.Productos {
				if _, ok := porActualizar[it.IDItem]; ok {
					it.EstadoItem = model.ItemEnCotizacion
				}
				productos[i] = it
			}
			p.Productos = productos
			return p
		},
	)

	log.Info().Str("id", solicitud.IDSolicitud).Int("items", len(elegibles)).Msg("solicitud de cotización generada")
	return &solicitud, nil
}

// ── RegistrarCotizacion ───────────────────────────────────────────────────────
// Appends a received quote to the solicitud and advances it to Cotizada.
// The received-quotes list is append-only.

func (s *cotizacionService) RegistrarCotizacion(idSolicitud string, req dto.RegistrarCotizacionRequest) (*model.SolicitudCotizacion, error) {
	if err := dto.Validar(req); err != nil {
		return nil, err
	}

	items := make([]model.CotizacionRecibidaItem, 0, len(req.Items))
	for _, it := range req.Items {
		monto := it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.CantidadRequerida)))
		items = append(items, model.CotizacionRecibidaItem{
			IDItem:             it.IDItem,
			NombreProducto:     it.NombreProducto,
			CantidadRequerida:  it.CantidadRequerida,
			UnidadMedida:       it.UnidadMedida,
			PrecioUnitario:     it.PrecioUnitario,
			MontoTotalOfertado: monto,
		})
	}
	cotizacion := model.CotizacionRecibida{
		IDProveedor:     req.IDProveedor,
		NombreProveedor: req.NombreProveedor,
		ModalidadPago:   model.ModalidadPago(req.ModalidadPago),
		PlazoEntrega:    req.PlazoEntrega,
		Items:           items,
	}

	var actualizada model.SolicitudCotizacion
	matched := s.solicitudes.Update(
		func(sc model.SolicitudCotizacion) bool { return sc.IDSolicitud == idSolicitud },
		func(sc model.SolicitudCotizacion) model.SolicitudCotizacion {
			recibidas := make([]model.CotizacionRecibida, 0, len(sc.CotizacionesRecibidas)+1)
			recibidas = append(recibidas, sc.CotizacionesRecibidas...)
			recibidas = append(recibidas, cotizacion)
			sc.CotizacionesRecibidas = recibidas
			sc.Estado = model.SolicitudCotizada
			actualizada = sc
			return sc
		},
	)
	if matched == 0 {
		return nil, fmt.Errorf("solicitud %s: %w", idSolicitud, apperror.ErrNoEncontrado)
	}

	log.Info().Str("solicitud", idSolicitud).Str("proveedor", req.NombreProveedor).Msg("cotización registrada")
	return &actualizada, nil
}

// ── Adjudicar ─────────────────────────────────────────────────────────────────
// Groups the winning selections by (proveedor, modalidad de pago) and
// emits one purchase order per group; each group total is the decimal
// sum of its adjudicated amounts. Grouping keys are exact-match, so no
// tie-breaking applies. Orders are emitted before the solicitud is marked
// Adjudicada, so the terminal state implies all orders exist.

func (s *cotizacionService) Adjudicar(req dto.AdjudicarRequest) ([]model.OrdenCompra, error) {
	if err := dto.Validar(req); err != nil {
		return nil, err
	}
	if _, ok := s.ObtenerPorID(req.IDSolicitud); !ok {
		return nil, fmt.Errorf("solicitud %s: %w", req.IDSolicitud, apperror.ErrNoEncontrado)
	}

	type grupo struct {
		idProveedor     string
		nombreProveedor string
		modalidadPago   model.ModalidadPago
		items           []model.OrdenCompraItem
		total           decimal.Decimal
	}

	// Stable grouping: first-seen order of (proveedor, modalidad) pairs.
	grupos := make(map[string]*grupo)
	var orden []string
	for _, sel := range req.Selecciones {
		clave := sel.IDProveedor + "|" + sel.ModalidadPago
		g, ok := grupos[clave]
		if !ok {
			g = &grupo{
				idProveedor:     sel.IDProveedor,
				nombreProveedor: sel.NombreProveedor,
				modalidadPago:   model.ModalidadPago(sel.ModalidadPago),
				total:           decimal.Zero,
			}
			grupos[clave] = g
			orden = append(orden, clave)
		}
		g.items = append(g.items, model.OrdenCompraItem{
			IDItem:             sel.IDItem,
			NombreProducto:     sel.NombreProducto,
			CantidadAdjudicada: sel.Cantidad,
			UnidadMedida:       sel.UnidadMedida,
			MontoTotal:         sel.Monto,
		})
		g.total = g.total.Add(sel.Monto)
	}

	nuevas := make([]model.OrdenCompra, 0, len(orden))
	for _, clave := range orden {
		g := grupos[clave]
		oc := model.OrdenCompra{
			IDOrden:           s.ordenes.NextID(),
			IDSolicitudOrigen: req.IDSolicitud,
			IDProveedor:       g.idProveedor,
			NombreProveedor:   g.nombreProveedor,
			FechaEmision:      s.ahora().Format(fechaCorta),
			ModalidadPago:     g.modalidadPago,
			MontoTotalOrden:   g.total,
			Items:             g.items,
			Estado:            model.OrdenEmitida,
		}
		s.ordenes.Append(oc)
		nuevas = append(nuevas, oc)
	}

	s.solicitudes.Update(
		func(sc model.SolicitudCotizacion) bool { return sc.IDSolicitud == req.IDSolicitud },
		func(sc model.SolicitudCotizacion) model.SolicitudCotizacion {
			sc.Estado = model.SolicitudAdjudicada
			return sc
		},
	)

	log.Info().Str("solicitud", req.IDSolicitud).Int("ordenes", len(nuevas)).Msg("adjudicación completada")
	return nuevas, nil
}

func (s *cotizacionService) ObtenerPorID(id string) (*model.SolicitudCotizacion, bool) {
	sc, ok := s.solicitudes.Find(func(sc model.SolicitudCotizacion) bool { return sc.IDSolicitud == id })
	if !ok {
		return nil, false
	}
	return &sc, true
}

func (s *cotizacionService) Listar() []model.SolicitudCotizacion { return s.solicitudes.Items() }
