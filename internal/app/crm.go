package app

import "gescom/internal/screen"

// Transition handlers for the CRM module. Registration forms are
// presentational; the machine only tracks selections and the success
// screen variant.

func (m *Machine) VerCliente(id string) {
	m.clienteSel = id
	m.Navegar(screen.ClientDetail)
}

func (m *Machine) VerMaestro(id string) {
	m.maestroSel = id
	m.Navegar(screen.MaestroDetail)
}

func (m *Machine) VerReporte(id string) {
	m.reporteSel = id
	m.Navegar(screen.ReportDetail)
}

// SeleccionarClienteParaMaestro pins the client a new maestro will be
// linked to and moves to the maestro registration form.
func (m *Machine) SeleccionarClienteParaMaestro(idCliente string) {
	m.clienteSel = idCliente
	m.Navegar(screen.RegisterMaestro)
}

// RegistroExitoso records which entity type was registered so the
// success screen can phrase its message.
func (m *Machine) RegistroExitoso(tipo string) {
	m.tipoExito = tipo
	m.Navegar(screen.RegistrationSuccess)
}
