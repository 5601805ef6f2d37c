package service

import (
	"fmt"
	"strings"
	"time"

	"gescom/internal/apperror"
	"gescom/internal/dto"
	"gescom/internal/model"
	"gescom/internal/store"

	"github.com/rs/zerolog/log"
)

type RecepcionService interface {
	Programar(req dto.ProgramarRecepcionRequest) (*model.Recepcion, *model.PedidoTransporte, error)
	// ValidarGuias attaches remission guides and starts the reception.
	// Returns false — without mutating anything — when the order or
	// reception id matches nothing.
	ValidarGuias(req dto.ValidarGuiasRequest) (bool, error)
	ListarOrdenes() []model.OrdenCompra
	ObtenerOrden(id string) (*model.OrdenCompra, bool)
	ListarPedidosTransporte() []model.PedidoTransporte
}

type recepcionService struct {
	ordenes    *store.Collection[model.OrdenCompra]
	transporte *store.Collection[model.PedidoTransporte]

	ahora func() time.Time
}

func NewRecepcionService(
	ordenes *store.Collection[model.OrdenCompra],
	transporte *store.Collection[model.PedidoTransporte],
) RecepcionService {
	return &recepcionService{ordenes: ordenes, transporte: transporte, ahora: time.Now}
}

// ── Programar ─────────────────────────────────────────────────────────────────
// Appends a Pendiente reception to the order. Reception ids are
// sequential per order ("REC-001-2"), derived from the order's numeric
// part plus the count of its existing receptions. Own-transport pickup
// additionally creates a transport order referencing the new reception.

func (s *recepcionService) Programar(req dto.ProgramarRecepcionRequest) (*model.Recepcion, *model.PedidoTransporte, error) {
	if err := dto.Validar(req); err != nil {
		return nil, nil, err
	}

	orden, ok := s.ObtenerOrden(req.IDOrden)
	if !ok {
		return nil, nil, fmt.Errorf("orden de compra %s: %w", req.IDOrden, apperror.ErrNoEncontrado)
	}

	items := make([]model.DetalleRecepcionItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.DetalleRecepcionItem{
			NombreProducto:     it.NombreProducto,
			CantidadProgramada: it.CantidadProgramada,
			UnidadMedida:       it.UnidadMedida,
		})
	}

	serie := orden.IDOrden
	if _, resto, ok := strings.Cut(orden.IDOrden, "-"); ok {
		serie = resto
	}
	recepcion := model.Recepcion{
		IDRecepcion:              fmt.Sprintf("REC-%s-%d", serie, len(orden.Recepciones)+1),
		ModalidadLogistica:       model.ModalidadLogistica(req.ModalidadLogistica),
		FechaRecepcionProgramada: req.Fecha,
		HoraRecepcionProgramada:  req.Hora,
		RecursoAsignado:          req.RecursoAsignado,
		Estado:                   model.RecepcionPendiente,
		Items:                    items,
	}

	var transporte *model.PedidoTransporte
	if recepcion.ModalidadLogistica == model.RecojoTransportePropio {
		pt := model.PedidoTransporte{
			IDPedidoTransporte: s.transporte.NextID(),
			IDRecepcionOrigen:  recepcion.IDRecepcion,
			IDOrdenCompra:      orden.IDOrden,
			Proveedor:          orden.NombreProveedor,
			FechaRecojo:        req.Fecha,
			HoraRecojo:         req.Hora,
			Estado:             "Pendiente",
		}
		s.transporte.Append(pt)
		transporte = &pt
	}

	s.ordenes.Update(
		func(oc model.OrdenCompra) bool { return oc.IDOrden == req.IDOrden },
		func(oc model.OrdenCompra) model.OrdenCompra {
			recepciones := make([]model.Recepcion, 0, len(oc.Recepciones)+1)
			recepciones = append(recepciones, oc.Recepciones...)
			recepciones = append(recepciones, recepcion)
			oc.Recepciones = recepciones
			oc.Estado = model.OrdenProgramada
			return oc
		},
	)

	log.Info().
		Str("orden", orden.IDOrden).
		Str("recepcion", recepcion.IDRecepcion).
		Str("modalidad", req.ModalidadLogistica).
		Msg("recepción programada")
	return &recepcion, transporte, nil
}

// ── ValidarGuias ──────────────────────────────────────────────────────────────

func (s *recepcionService) ValidarGuias(req dto.ValidarGuiasRequest) (bool, error) {
	if err := dto.Validar(req); err != nil {
		return false, err
	}

	guias := make([]model.GuiaRemision, 0, len(req.Guias))
	for _, g := range req.Guias {
		items := make([]model.DetalleRecepcionItem, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, model.DetalleRecepcionItem{
				NombreProducto:     it.NombreProducto,
				CantidadProgramada: it.CantidadProgramada,
				UnidadMedida:       it.UnidadMedida,
			})
		}
		guias = append(guias, model.GuiaRemision{
			NumeroGuia:    g.NumeroGuia,
			Transportista: g.Transportista,
			Items:         items,
		})
	}

	// Pre-check so a miss leaves the collection (and its version) untouched.
	orden, ok := s.ObtenerOrden(req.IDOrden)
	if ok {
		ok = false
		for _, r := range orden.Recepciones {
			if r.IDRecepcion == req.IDRecepcion && r.Estado == model.RecepcionPendiente {
				ok = true
				break
			}
		}
	}
	if !ok {
		log.Debug().
			Str("orden", req.IDOrden).
			Str("recepcion", req.IDRecepcion).
			Msg("validar guías: sin coincidencia, se ignora")
		return false, nil
	}

	horaInicio := s.ahora().Format("15:04")
	s.ordenes.Update(
		func(oc model.OrdenCompra) bool { return oc.IDOrden == req.IDOrden },
		func(oc model.OrdenCompra) model.OrdenCompra {
			recepciones := make([]model.Recepcion, len(oc.Recepciones))
			for i, r := range oc.Recepciones {
				// Forward-only: a reception already En Curso never regresses.
				if r.IDRecepcion == req.IDRecepcion && r.Estado == model.RecepcionPendiente {
					r.GuiasRemision = guias
					r.Estado = model.RecepcionEnCurso
					r.HoraInicioRecepcion = horaInicio
				}
				recepciones[i] = r
			}
			oc.Recepciones = recepciones
			return oc
		},
	)

	log.Info().
		Str("recepcion", req.IDRecepcion).
		Int("guias", len(guias)).
		Str("hora_inicio", horaInicio).
		Msg("guías de remisión validadas, recepción en curso")
	return true, nil
}

func (s *recepcionService) ListarOrdenes() []model.OrdenCompra { return s.ordenes.Items() }

func (s *recepcionService) ObtenerOrden(id string) (*model.OrdenCompra, bool) {
	oc, ok := s.ordenes.Find(func(oc model.OrdenCompra) bool { return oc.IDOrden == id })
	if !ok {
		return nil, false
	}
	return &oc, true
}

func (s *recepcionService) ListarPedidosTransporte() []model.PedidoTransporte {
	return s.transporte.Items()
}
