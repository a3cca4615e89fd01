package predictionsrv

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Abraxas-365/pathway/guidance/prediction"
	"github.com/Abraxas-365/pathway/pkg/errx"
	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/Abraxas-365/pathway/pkg/logx"
	"github.com/google/uuid"
)

const historyLimit = 50

type PredictionService struct {
	repo      prediction.Repository
	predictor prediction.Predictor
	cache     prediction.CatalogCache
	activity  prediction.ActivityRecorder
	cacheTTL  time.Duration
	info      prediction.InfoDirectory
	now       func() time.Time
}

func NewPredictionService(
	repo prediction.Repository,
	predictor prediction.Predictor,
	cache prediction.CatalogCache,
	activity prediction.ActivityRecorder,
	cacheTTL time.Duration,
) *PredictionService {
	return &PredictionService{
		repo:      repo,
		predictor: predictor,
		cache:     cache,
		activity:  activity,
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}
}

// WithInfoDirectory sets the curated cards CareerInfo prefers over the generic card
func (s *PredictionService) WithInfoDirectory(d prediction.InfoDirectory) *PredictionService {
	s.info = d
	return s
}

// CareerInfo returns the information card for a career
func (s *PredictionService) CareerInfo(name string) (json.RawMessage, error) {
	return s.info.Card(name)
}

// Careers lists the careers the prediction service knows, served from cache when possible.
// It never fails: an unreachable service yields the fallback catalog.
func (s *PredictionService) Careers(ctx context.Context) *prediction.Catalog {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			logx.Warnw("careers cache read failed", "error", err)
		} else if cached != nil {
			return cached
		}
	}

	catalog, err := s.predictor.Careers(ctx)
	if err != nil || catalog == nil {
		logx.Warnf("ML service careers unavailable, serving fallback list: %v", err)
		return prediction.FallbackCatalog()
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, catalog, s.cacheTTL); err != nil {
			logx.Warnw("careers cache write failed", "error", err)
		}
	}
	return catalog
}

// Predict asks the ML service and falls back to keyword matching only when the
// service cannot be reached. When userID is set the result is stored.
func (s *PredictionService) Predict(ctx context.Context, userID kernel.UserID, profile prediction.CandidateProfile) (*prediction.CareerPrediction, error) {
	result, err := s.predictor.Predict(ctx, profile)
	if err != nil {
		var serviceErr *prediction.ServiceError
		switch {
		case errors.Is(err, prediction.ErrServiceUnavailable):
			logx.Infof("ML service unreachable, using local prediction fallback: %v", err)
			local := prediction.Match(profile)
			result = &local
		case errors.As(err, &serviceErr):
			return nil, prediction.ErrPredictionFailed(serviceErr.Message).WithCause(err)
		default:
			return nil, prediction.ErrServiceFailed().WithCause(err)
		}
	}

	if !userID.IsEmpty() {
		if err := s.record(ctx, userID, profile, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *PredictionService) record(ctx context.Context, userID kernel.UserID, profile prediction.CandidateProfile, result *prediction.CareerPrediction) error {
	now := s.now()
	entry := &prediction.CareerHistory{
		ID:                 kernel.NewCareerHistoryID(uuid.NewString()),
		UserID:             userID,
		InputData:          profile,
		PredictedCareer:    result.PrimaryCareer,
		Confidence:         result.Confidence,
		AlternativeCareers: result.AlternativeCareers,
		Recommendations:    result.Recommendations,
		SkillsMatch:        result.SkillsMatch,
		CreatedAt:          now,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return prediction.ErrRegistry.NewWithCause(prediction.CodeSaveFailed, err)
	}
	if err := s.activity.RecordAssessment(ctx, userID, now); err != nil {
		return prediction.ErrRegistry.NewWithCause(prediction.CodeSaveFailed, err)
	}
	return nil
}

func (s *PredictionService) History(ctx context.Context, userID kernel.UserID) ([]*prediction.CareerHistory, error) {
	return s.RecentHistory(ctx, userID, historyLimit)
}

// RecentHistory lists the newest predictions, at most limit
func (s *PredictionService) RecentHistory(ctx context.Context, userID kernel.UserID, limit int) ([]*prediction.CareerHistory, error) {
	items, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, prediction.ErrRegistry.NewWithCause(prediction.CodeHistoryFailed, err)
	}
	if items == nil {
		items = []*prediction.CareerHistory{}
	}
	return items, nil
}

func (s *PredictionService) DeleteHistory(ctx context.Context, userID kernel.UserID, id kernel.CareerHistoryID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return err
		}
		return errx.Wrap(err, "Error deleting career history", errx.TypeInternal)
	}
	return nil
}
