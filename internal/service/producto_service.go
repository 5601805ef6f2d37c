package service

import (
	"fmt"

	"gescom/internal/apperror"
	"gescom/internal/dto"
	"gescom/internal/model"
	"gescom/internal/store"

	"github.com/rs/zerolog/log"
)

type ProductoService interface {
	IniciarRegistro()
	IniciarEdicion(id string) error
	Guardar(req dto.GuardarProductoRequest) (*model.ProductoCatalogo, error)
	Cancelar()
	Borrador() model.ProductoCatalogo
	ObtenerPorID(id string) (*model.ProductoCatalogo, bool)
	Listar() []model.ProductoCatalogo
}

type productoService struct {
	productos *store.Collection[model.ProductoCatalogo]

	borrador model.ProductoCatalogo
	editando *model.ProductoCatalogo
}

func NewProductoService(productos *store.Collection[model.ProductoCatalogo]) ProductoService {
	return &productoService{productos: productos}
}

// Single-step draft flow: the form captures everything at once and
// either overwrites the edited record or appends a new one.

func (s *productoService) IniciarRegistro() {
	s.editando = nil
	s.borrador = model.ProductoCatalogo{}
}

func (s *productoService) IniciarEdicion(id string) error {
	p, ok := s.productos.Find(func(p model.ProductoCatalogo) bool { return p.IDProducto == id })
	if !ok {
		return fmt.Errorf("producto %s: %w", id, apperror.ErrNoEncontrado)
	}
	s.editando = &p
	s.borrador = p
	return nil
}

func (s *productoService) Guardar(req dto.GuardarProductoRequest) (*model.ProductoCatalogo, error) {
	if err := dto.Validar(req); err != nil {
		return nil, err
	}

	guardado := model.ProductoCatalogo{
		Nombre:            req.Nombre,
		Categoria:         req.Categoria,
		Descripcion:       req.Descripcion,
		UnidadMedida:      req.UnidadMedida,
		PrecioReferencial: req.PrecioReferencial,
	}

	if s.editando != nil {
		objetivo := s.editando.IDProducto
		guardado.IDProducto = objetivo
		guardado.Token = s.editando.Token
		s.productos.Update(
			func(p model.ProductoCatalogo) bool { return p.IDProducto == objetivo },
			func(model.ProductoCatalogo) model.ProductoCatalogo { return guardado },
		)
		log.Debug().Str("id", objetivo).Msg("producto actualizado")
	} else {
		guardado.IDProducto = s.productos.NextID()
		guardado.Token = store.NewToken()
		s.productos.Append(guardado)
		log.Info().Str("id", guardado.IDProducto).Msg("producto registrado")
	}

	s.borrador = model.ProductoCatalogo{}
	s.editando = nil
	return &guardado, nil
}

func (s *productoService) Cancelar() {
	s.borrador = model.ProductoCatalogo{}
	s.editando = nil
}

func (s *productoService) Borrador() model.ProductoCatalogo { return s.borrador }

func (s *productoService) ObtenerPorID(id string) (*model.ProductoCatalogo, bool) {
	p, ok := s.productos.Find(func(p model.ProductoCatalogo) bool { return p.IDProducto == id })
	if !ok {
		return nil, false
	}
	return &p, true
}

func (s *productoService) Listar() []model.ProductoCatalogo { return s.productos.Items() }
