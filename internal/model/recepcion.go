package model

type ModalidadLogistica string

const (
	EntregaEnAlmacen       ModalidadLogistica = "Entrega en Almacén"
	RecojoTransportePropio ModalidadLogistica = "Recojo por Transporte Propio"
)

type EstadoRecepcion string

const (
	RecepcionPendiente EstadoRecepcion = "Pendiente"
	RecepcionEnCurso   EstadoRecepcion = "En Curso"
)

// Recepcion is a scheduled delivery event against a purchase order.
// Its estado only advances forward (Pendiente → En Curso).
// IDRecepcion is sequential per order, not global ("REC-001-2").
type Recepcion struct {
	IDRecepcion              string
	ModalidadLogistica       ModalidadLogistica
	FechaRecepcionProgramada string
	HoraRecepcionProgramada  string
	RecursoAsignado          string
	Estado                   EstadoRecepcion
	Items                    []DetalleRecepcionItem
	GuiasRemision            []GuiaRemision
	HoraInicioRecepcion      string
}

type DetalleRecepcionItem struct {
	NombreProducto     string
	CantidadProgramada int
	UnidadMedida       string
}

// GuiaRemision is a supplier-issued delivery document validated against
// a reception.
type GuiaRemision struct {
	NumeroGuia    string
	Transportista string
	Items         []DetalleRecepcionItem
}

// PedidoTransporte is created only when the logistics mode requires
// pickup by own transport.
type PedidoTransporte struct {
	IDPedidoTransporte string
	IDRecepcionOrigen  string
	IDOrdenCompra      string
	Proveedor          string
	FechaRecojo        string
	HoraRecojo         string
	Estado             string
}
