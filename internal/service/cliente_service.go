package service

import (
	"gescom/internal/model"
	"gescom/internal/store"
)

// ClienteService exposes the CRM collections. The CRM module only
// selects and navigates; registration forms are presentational
// consumers outside the state machine.
type ClienteService interface {
	ListarClientes() []model.Cliente
	ObtenerCliente(id string) (*model.Cliente, bool)
	ListarMaestros() []model.Maestro
	ObtenerMaestro(id string) (*model.Maestro, bool)
	ListarReportes() []model.Reporte
	ObtenerReporte(id string) (*model.Reporte, bool)
}

type clienteService struct {
	clientes *store.Collection[model.Cliente]
	maestros *store.Collection[model.Maestro]
	reportes *store.Collection[model.Reporte]
}

func NewClienteService(
	clientes *store.Collection[model.Cliente],
	maestros *store.Collection[model.Maestro],
	reportes *store.Collection[model.Reporte],
) ClienteService {
	return &clienteService{clientes: clientes, maestros: maestros, reportes: reportes}
}

func (s *clienteService) ListarClientes() []model.Cliente { return s.clientes.Items() }

func (s *clienteService) ObtenerCliente(id string) (*model.Cliente, bool) {
	c, ok := s.clientes.Find(func(c model.Cliente) bool { return c.ID == id })
	if !ok {
		return nil, false
	}
	return &c, true
}

func (s *clienteService) ListarMaestros() []model.Maestro { return s.maestros.Items() }

func (s *clienteService) ObtenerMaestro(id string) (*model.Maestro, bool) {
	m, ok := s.maestros.Find(func(m model.Maestro) bool { return m.ID == id })
	if !ok {
		return nil, false
	}
	return &m, true
}

func (s *clienteService) ListarReportes() []model.Reporte { return s.reportes.Items() }

func (s *clienteService) ObtenerReporte(id string) (*model.Reporte, bool) {
	r, ok := s.reportes.Find(func(r model.Reporte) bool { return r.ID == id })
	if !ok {
		return nil, false
	}
	return &r, true
}
