// Package screen defines the flat navigation enumeration and the
// bounded history of visited screens. Screens have no hierarchy; back
// destinations are hand-coded in the transition table, with the history
// stack available for consumers that want real back navigation.
package screen

type Screen string

const (
	// Abastecimiento
	MainMenu                 Screen = "MainMenu"
	ProvidersList            Screen = "ProvidersList"
	ProviderFormStep1        Screen = "ProviderFormStep1"
	ProviderFormStep2        Screen = "ProviderFormStep2"
	ProviderDetails          Screen = "ProviderDetails"
	ProductsList             Screen = "ProductsList"
	ProductForm              Screen = "ProductForm"
	ProductDetails           Screen = "ProductDetails"
	PedidosList              Screen = "PedidosList"
	PedidoDetails            Screen = "PedidoDetails"
	SolicitudesList          Screen = "SolicitudesList"
	GroupItemsForQuotation   Screen = "GroupItemsForQuotation"
	SolicitudDetails         Screen = "SolicitudDetails"
	RegisterQuote            Screen = "RegisterQuote"
	EvaluateQuotes           Screen = "EvaluateQuotes"
	OrdersList               Screen = "OrdersList"
	OrderDetailMonitoring    Screen = "OrderDetailMonitoring"
	ScheduleReceptionsList   Screen = "ScheduleReceptionsList"
	ScheduleReceptionForm    Screen = "ScheduleReceptionForm"
	RemissionGuideList       Screen = "RemissionGuideList"
	RemissionGuideValidation Screen = "RemissionGuideValidation"
	IncidentsList            Screen = "IncidentsList"

	// Herramientas IA — opaque features reached via navigation only.
	AIHub              Screen = "AIHub"
	AIChat             Screen = "AIChat"
	AIVision           Screen = "AIVision"
	AIEmailGenerator   Screen = "AIEmailGenerator"
	AIProductCataloger Screen = "AIProductCataloger"
	AIStrategy         Screen = "AIStrategy"

	// Clientes / CRM
	Clients                Screen = "Clients"
	Maestros               Screen = "Maestros"
	RegisterClient         Screen = "RegisterClient"
	SelectClientForMaestro Screen = "SelectClientForMaestro"
	RegisterMaestro        Screen = "RegisterMaestro"
	RegistrationSuccess    Screen = "RegistrationSuccess"
	ClientDetail           Screen = "ClientDetail"
	MaestroDetail          Screen = "MaestroDetail"
	Premios                Screen = "Premios"
	Reports                Screen = "Reports"
	ReportDetail           Screen = "ReportDetail"
	UpdateClient           Screen = "UpdateClient"
	UpdateMaestro          Screen = "UpdateMaestro"

	// Ventas
	MainContent       Screen = "MainContent"
	SalesTable        Screen = "SalesTable"
	RegisterSale      Screen = "RegisterSale"
	PaymentsView      Screen = "PaymentsView"
	ClaimsView        Screen = "ClaimsView"
	VentasReportsView Screen = "VentasReportsView"
)
