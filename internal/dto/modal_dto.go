package dto

// ConfirmacionModal describes the global confirmation dialog. OnClose is
// the transition thunk the consumer invokes when dismissing it.
type ConfirmacionModal struct {
	Abierto bool
	Titulo  string
	Mensaje string
	OnClose func()
}

// PostCotizacionModal is the multi-step dialog shown after registering a
// quote: the consumer either registers another quote for the same
// solicitud or finishes and returns to the list.
type PostCotizacionModal struct {
	Abierto      bool
	Titulo       string
	Mensaje      string
	OnAddAnother func()
	OnFinish     func()
}
