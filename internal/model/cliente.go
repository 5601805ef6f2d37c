package model

// Cliente is a CRM client record. The CRM module only selects and
// navigates these; registration screens are presentational consumers.
type Cliente struct {
	ID          string
	Nombre      string
	Documento   string
	Telefono    string
	Email       string
	Direcciones []string
	Contactos   []string
}

// Maestro is a tradesperson associated with a client, with redeemable
// loyalty points.
type Maestro struct {
	ID           string
	IDCliente    string
	Nombre       string
	Especialidad string
	Puntos       int
}

// Reporte is a CRM report selectable from the reports screen.
type Reporte struct {
	ID      string
	Titulo  string
	Periodo string
	Resumen string
}
