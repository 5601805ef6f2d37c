package dto

// ProgramarRecepcionRequest schedules one reception against a purchase
// order. When the logistics mode is own-transport pickup, a transport
// order is created alongside the reception.
type ProgramarRecepcionRequest struct {
	IDOrden            string                  `json:"id_orden"            validate:"required"`
	ModalidadLogistica string                  `json:"modalidad_logistica" validate:"required,oneof='Entrega en Almacén' 'Recojo por Transporte Propio'"`
	Fecha              string                  `json:"fecha"               validate:"required"`
	Hora               string                  `json:"hora"                validate:"required"`
	RecursoAsignado    string                  `json:"recurso_asignado"`
	Items              []ItemRecepcionRequest  `json:"items"               validate:"required,min=1,dive"`
}

type ItemRecepcionRequest struct {
	NombreProducto     string `json:"nombre_producto"     validate:"required"`
	CantidadProgramada int    `json:"cantidad_programada" validate:"required,min=1"`
	UnidadMedida       string `json:"unidad_medida"`
}

// ValidarGuiasRequest attaches remission guides to a reception and starts
// it. Unknown order or reception ids are a silent no-op — callers must
// pre-validate existence.
type ValidarGuiasRequest struct {
	IDOrden     string                `json:"id_orden"     validate:"required"`
	IDRecepcion string                `json:"id_recepcion" validate:"required"`
	Guias       []GuiaRemisionRequest `json:"guias"        validate:"required,min=1,dive"`
}

type GuiaRemisionRequest struct {
	NumeroGuia    string                 `json:"numero_guia" validate:"required"`
	Transportista string                 `json:"transportista"`
	Items         []ItemRecepcionRequest `json:"items"       validate:"dive"`
}
