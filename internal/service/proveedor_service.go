package service

import (
	"fmt"

	"gescom/internal/apperror"
	"gescom/internal/dto"
	"gescom/internal/model"
	"gescom/internal/store"

	"github.com/rs/zerolog/log"
)

type ProveedorService interface {
	IniciarRegistro()
	IniciarEdicion(id string) error
	ContinuarPaso2(req dto.PerfilProveedorRequest) error
	Guardar(req dto.GuardarProveedorRequest) (*model.Proveedor, error)
	Cancelar()
	Borrador() model.Proveedor
	EnEdicion() bool
	ObtenerPorID(id string) (*model.Proveedor, bool)
	Listar() []model.Proveedor
}

type proveedorService struct {
	proveedores *store.Collection[model.Proveedor]

	borrador model.Proveedor
	editando *model.Proveedor
}

func NewProveedorService(proveedores *store.Collection[model.Proveedor]) ProveedorService {
	return &proveedorService{proveedores: proveedores}
}

// ── Flujo de dos pasos ────────────────────────────────────────────────────────
// Step 1 captures the profile into the draft, step 2 attaches the
// offered-product list and saves. Cancel discards the draft
// unconditionally at either step.

func (s *proveedorService) IniciarRegistro() {
	s.editando = nil
	s.borrador = model.Proveedor{}
}

func (s *proveedorService) IniciarEdicion(id string) error {
	p, ok := s.proveedores.Find(func(p model.Proveedor) bool { return p.ID == id })
	if !ok {
		return fmt.Errorf("proveedor %s: %w", id, apperror.ErrNoEncontrado)
	}
	// Editing pre-seeds the draft with the existing record.
	s.editando = &p
	s.borrador = p
	return nil
}

func (s *proveedorService) ContinuarPaso2(req dto.PerfilProveedorRequest) error {
	if err := dto.Validar(req); err != nil {
		return err
	}
	s.borrador.RazonSocial = req.RazonSocial
	s.borrador.RUC = req.RUC
	s.borrador.Direccion = req.Direccion
	s.borrador.Telefono = req.Telefono
	s.borrador.Email = req.Email
	return nil
}

// Guardar merges the draft into the existing provider (shallow field
// overwrite, later fields win) or appends a new provider with a fresh id.
// The product list always replaces the previous one wholesale.
func (s *proveedorService) Guardar(req dto.GuardarProveedorRequest) (*model.Proveedor, error) {
	if err := dto.Validar(req); err != nil {
		return nil, err
	}

	productos := make([]model.ProductoOfrecido, 0, len(req.Productos))
	for _, p := range req.Productos {
		productos = append(productos, model.ProductoOfrecido{
			Nombre:            p.Nombre,
			UnidadMedida:      p.UnidadMedida,
			PrecioReferencial: p.PrecioReferencial,
		})
	}

	guardado := s.borrador
	guardado.Productos = productos
	guardado.Contacto = guardado.Telefono

	if s.editando != nil {
		objetivo := s.editando.ID
		guardado.ID = objetivo
		guardado.Token = s.editando.Token
		s.proveedores.Update(
			func(p model.Proveedor) bool { return p.ID == objetivo },
			func(model.Proveedor) model.Proveedor { return guardado },
		)
		log.Debug().Str("id", objetivo).Msg("proveedor actualizado")
	} else {
		guardado.ID = s.proveedores.NextID()
		guardado.Token = store.NewToken()
		s.proveedores.Append(guardado)
		log.Info().Str("id", guardado.ID).Msg("proveedor registrado")
	}

	s.borrador = model.Proveedor{}
	s.editando = nil
	return &guardado, nil
}

func (s *proveedorService) Cancelar() {
	s.borrador = model.Proveedor{}
	s.editando = nil
}

func (s *proveedorService) Borrador() model.Proveedor { return s.borrador }

func (s *proveedorService) EnEdicion() bool { return s.editando != nil }

func (s *proveedorService) ObtenerPorID(id string) (*model.Proveedor, bool) {
	p, ok := s.proveedores.Find(func(p model.Proveedor) bool { return p.ID == id })
	if !ok {
		return nil, false
	}
	return &p, true
}

func (s *proveedorService) Listar() []model.Proveedor { return s.proveedores.Items() }
