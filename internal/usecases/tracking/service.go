// Package tracking gère les dernières positions GPS connues des livreurs.
// Pas de flux temps réel : chaque remontée écrase la précédente et la carte
// du back office interroge les dernières positions à la demande.
package tracking

import (
	"time"

	"github.com/mataweb/livraison-manager-api/infrastructure/repository"
	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/pkg/errors"
)

var (
	ErrPositionInvalide = errors.New("position GPS invalide")
	ErrLivreurInconnu   = errors.New("livreur inconnu")
)

type Tracker interface {
	RecordPosition(livreurID string, latitude, longitude float64, recordedAt time.Time) error
	ListLastPositions() ([]*domain.Position, error)
}

type Service struct {
	positionRepo repository.PositionRepository
	livreurRepo  repository.LivreurRepository
}

func NewService(positionRepo repository.PositionRepository, livreurRepo repository.LivreurRepository) Tracker {
	return &Service{
		positionRepo: positionRepo,
		livreurRepo:  livreurRepo,
	}
}

func (s *Service) RecordPosition(livreurID string, latitude, longitude float64, recordedAt time.Time) error {
	if livreurID == "" {
		return errors.Wrap(ErrPositionInvalide, "identifiant livreur absent")
	}

	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return errors.Wrapf(ErrPositionInvalide, "coordonnées hors limites: lat=%f lon=%f", latitude, longitude)
	}

	livreur, err := s.livreurRepo.GetByID(livreurID)
	if err != nil {
		return errors.Wrap(err, "lecture du livreur")
	}
	if livreur == nil {
		return errors.Wrapf(ErrLivreurInconnu, "livreur %s", livreurID)
	}

	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	position := &domain.Position{
		LivreurID:  livreurID,
		Latitude:   latitude,
		Longitude:  longitude,
		RecordedAt: recordedAt,
	}

	return s.positionRepo.SaveOrUpdate(position)
}

func (s *Service) ListLastPositions() ([]*domain.Position, error) {
	positions, err := s.positionRepo.ListLast()
	if err != nil {
		return nil, errors.Wrap(err, "lecture des positions")
	}

	return positions, nil
}
