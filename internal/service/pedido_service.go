package service

import (
	"gescom/internal/model"
	"gescom/internal/store"

	"github.com/rs/zerolog/log"
)

type PedidoService interface {
	Listar() []model.Pedido
	ObtenerPorID(id string) (*model.Pedido, bool)
	MarcarRevisado(id string)
	// ItemsPendientesCotizacion derives the line items of reviewed pedidos
	// that are not yet grouped into a quotation request. Memoized on the
	// pedido collection version.
	ItemsPendientesCotizacion() []model.ItemPendiente
}

type pedidoService struct {
	pedidos *store.Collection[model.Pedido]

	memoVersion    uint64
	memoValido     bool
	memoPendientes []model.ItemPendiente
}

func NewPedidoService(pedidos *store.Collection[model.Pedido]) PedidoService {
	return &pedidoService{pedidos: pedidos}
}

func (s *pedidoService) Listar() []model.Pedido { return s.pedidos.Items() }

func (s *pedidoService) ObtenerPorID(id string) (*model.Pedido, bool) {
	p, ok := s.pedidos.Find(func(p model.Pedido) bool { return p.IDPedido == id })
	if !ok {
		return nil, false
	}
	return &p, true
}

// MarcarRevisado flips the pedido estado. Unknown ids are a no-op.
func (s *pedidoService) MarcarRevisado(id string) {
	matched := s.pedidos.Update(
		func(p model.Pedido) bool { return p.IDPedido == id },
		func(p model.Pedido) model.Pedido {
			p.EstadoPedido = model.PedidoRevisado
			return p
		},
	)
	if matched == 0 {
		log.Debug().Str("id", id).Msg("marcar revisado: pedido no encontrado")
	}
}

func (s *pedidoService) ItemsPendientesCotizacion() []model.ItemPendiente {
	if s.memoValido && s.pedidos.Version() == s.memoVersion {
		return s.memoPendientes
	}

	var pendientes []model.ItemPendiente
	for _, pedido := range s.pedidos.Items() {
		if pedido.EstadoPedido != model.PedidoRevisado {
			continue
		}
		for _, item := range pedido.Productos {
			if item.EstadoItem == model.ItemEnCotizacion {
				continue
			}
			pendientes = append(pendientes, model.ItemPendiente{
				ItemPedido:     item,
				OrigenPedidoID: pedido.IDPedido,
			})
		}
	}

	s.memoVersion = s.pedidos.Version()
	s.memoValido = true
	s.memoPendientes = pendientes
	return pendientes
}
