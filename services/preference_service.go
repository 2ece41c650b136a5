package services

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "github.com/NomadCrew/travel-timeline-backend/errors"
	"github.com/NomadCrew/travel-timeline-backend/logger"
	"github.com/NomadCrew/travel-timeline-backend/store"
	"github.com/NomadCrew/travel-timeline-backend/types"
	"go.uber.org/zap"
)

// PreferenceService reads and writes the timeline preferences record.
type PreferenceService struct {
	store   store.PreferenceStore
	key     string
	metrics *serviceMetrics
	log     *zap.SugaredLogger
}

func NewPreferenceService(s store.PreferenceStore) *PreferenceService {
	return &PreferenceService{
		store:   s,
		key:     types.PreferencesStorageKey,
		metrics: newServiceMetrics(),
		log:     logger.GetLogger().Named("preference-service"),
	}
}

// Load returns the stored preferences. It never fails: a missing record yields
// the defaults, a corrupt record yields the defaults and is removed, and a
// store failure is logged and yields the defaults.
func (s *PreferenceService) Load(ctx context.Context) types.Preferences {
	raw, found, err := s.store.Get(ctx, s.key)
	if err != nil {
		s.metrics.preferenceLoads.WithLabelValues(outcomeError).Inc()
		s.log.Warnw("Failed to read preferences, using defaults", "key", s.key, "error", err)
		return types.DefaultPreferences()
	}
	if !found {
		s.metrics.preferenceLoads.WithLabelValues(outcomeMissing).Inc()
		return types.DefaultPreferences()
	}

	prefs, corrupt := types.DecodePreferences(raw)
	if corrupt {
		s.metrics.preferenceLoads.WithLabelValues(outcomeCorrupt).Inc()
		s.log.Warnw("Stored preferences are corrupt, discarding", "key", s.key)
		if err := s.store.Delete(ctx, s.key); err != nil {
			s.log.Warnw("Failed to delete corrupt preferences", "key", s.key, "error", err)
		}
		return types.DefaultPreferences()
	}

	s.metrics.preferenceLoads.WithLabelValues(outcomeFound).Inc()
	return prefs
}

// Save writes the full preferences record.
func (s *PreferenceService) Save(ctx context.Context, prefs types.Preferences) error {
	if err := validatePreferences(prefs); err != nil {
		s.metrics.preferenceSaves.WithLabelValues(outcomeError).Inc()
		return err
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		s.metrics.preferenceSaves.WithLabelValues(outcomeError).Inc()
		return apperrors.Wrap(err, apperrors.ServerError, "Failed to encode preferences")
	}

	if err := s.store.Set(ctx, s.key, raw); err != nil {
		s.metrics.preferenceSaves.WithLabelValues(outcomeError).Inc()
		s.log.Errorw("Failed to save preferences", "key", s.key, "error", err)
		return apperrors.Wrap(err, apperrors.CacheError, "Failed to save preferences")
	}

	s.metrics.preferenceSaves.WithLabelValues(outcomeSaved).Inc()
	return nil
}

func validatePreferences(prefs types.Preferences) error {
	if !prefs.Budget.IsValid() {
		return apperrors.ValidationFailed("Invalid preferences", fmt.Sprintf("unknown budget %q", prefs.Budget))
	}
	if !prefs.Unit.IsValid() {
		return apperrors.ValidationFailed("Invalid preferences", fmt.Sprintf("unknown unit %q", prefs.Unit))
	}
	if !prefs.Layout.IsValid() {
		return apperrors.ValidationFailed("Invalid preferences", fmt.Sprintf("unknown layout %q", prefs.Layout))
	}
	return nil
}
