package service

import (
	"time"

	"gescom/internal/dto"
	"gescom/internal/model"
	"gescom/internal/store"

	"github.com/rs/zerolog/log"
)

type ReclamoService interface {
	// GenerarReclamo creates one claim referencing the given incident ids
	// and flips every matched incident to En Reclamo. Unmatched ids stay
	// recorded on the claim; IncidenciasVinculadas reports how many
	// actually matched.
	GenerarReclamo(req dto.GenerarReclamoRequest) (*model.Reclamo, error)
	ListarIncidencias() []model.Incidencia
	ListarReclamos() []model.Reclamo
}

type reclamoService struct {
	incidencias *store.Collection[model.Incidencia]
	reclamos    *store.Collection[model.Reclamo]

	ahora func() time.Time
}

func NewReclamoService(
	incidencias *store.Collection[model.Incidencia],
	reclamos *store.Collection[model.Reclamo],
) ReclamoService {
	return &reclamoService{incidencias: incidencias, reclamos: reclamos, ahora: time.Now}
}

func (s *reclamoService) GenerarReclamo(req dto.GenerarReclamoRequest) (*model.Reclamo, error) {
	if err := dto.Validar(req); err != nil {
		return nil, err
	}

	seleccionadas := make(map[string]struct{}, len(req.IncidenciasIDs))
	for _, id := range req.IncidenciasIDs {
		seleccionadas[id] = struct{}{}
	}

	vinculadas := s.incidencias.Update(
		func(inc model.Incidencia) bool {
			_, ok := seleccionadas[inc.IDIncidencia]
			return ok
		},
		func(inc model.Incidencia) model.Incidencia {
			inc.Estado = model.IncidenciaEnReclamo
			return inc
		},
	)

	reclamo := model.Reclamo{
		IDReclamo:             s.reclamos.NextID(),
		FechaReclamo:          s.ahora().Format(fechaCorta),
		IncidenciasIDs:        req.IncidenciasIDs,
		IncidenciasVinculadas: vinculadas,
		ObservacionReclamo:    req.Observacion,
		AccionCorrectiva:      model.AccionCorrectiva(req.AccionCorrectiva),
		EstadoReclamo:         model.ReclamoEnviado,
	}
	s.reclamos.Append(reclamo)

	if vinculadas < len(req.IncidenciasIDs) {
		log.Debug().
			Str("reclamo", reclamo.IDReclamo).
			Int("sin_coincidencia", len(req.IncidenciasIDs)-vinculadas).
			Msg("reclamo con incidencias no encontradas")
	}
	log.Info().
		Str("id", reclamo.IDReclamo).
		Int("incidencias", len(req.IncidenciasIDs)).
		Msg("reclamo generado y enviado al proveedor")
	return &reclamo, nil
}

func (s *reclamoService) ListarIncidencias() []model.Incidencia { return s.incidencias.Items() }

func (s *reclamoService) ListarReclamos() []model.Reclamo { return s.reclamos.Items() }
