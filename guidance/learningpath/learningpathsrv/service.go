package learningpathsrv

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Abraxas-365/pathway/guidance/learningpath"
	"github.com/Abraxas-365/pathway/pkg/errx"
	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/Abraxas-365/pathway/pkg/logx"
	"github.com/google/uuid"
)

const historyLimit = 50

var emptyInput = json.RawMessage(`{}`)

type LearningPathService struct {
	repo     learningpath.Repository
	ai       learningpath.AIGenerator
	remote   learningpath.PlanGenerator
	activity learningpath.ActivityRecorder
	now      func() time.Time
}

// NewLearningPathService wires the generators in fallback order: ai, then
// remote. Either may be nil.
func NewLearningPathService(
	repo learningpath.Repository,
	ai learningpath.AIGenerator,
	remote learningpath.PlanGenerator,
	activity learningpath.ActivityRecorder,
) *LearningPathService {
	return &LearningPathService{
		repo:     repo,
		ai:       ai,
		remote:   remote,
		activity: activity,
		now:      time.Now,
	}
}

// Generate builds a plan, trying the LLM first, then the ML service, then the
// local synthesizer. It always produces a plan.
func (s *LearningPathService) Generate(ctx context.Context, req learningpath.GenerateRequest) *learningpath.Plan {
	req = req.WithDefaults()

	if s.ai != nil && s.ai.Configured() {
		plan, err := s.ai.GeneratePlan(ctx, req)
		if err == nil {
			return plan
		}
		logx.Warnf("OpenAI learning path generation failed, falling back: %v", err)
	}

	if s.remote != nil {
		plan, err := s.remote.GeneratePlan(ctx, req)
		if err == nil && plan != nil && len(plan.LearningPhases) > 0 {
			return plan
		}
		logx.Infof("ML service learning path unavailable, using local synthesizer: %v", err)
	}

	plan := learningpath.Synthesize(req)
	return &plan
}

func (s *LearningPathService) AIStatus(ctx context.Context) learningpath.AIStatus {
	if s.ai == nil {
		return learningpath.AIStatus{Message: "OpenAI API key not configured"}
	}
	return s.ai.Status(ctx)
}

// Save stores a plan for the user and bumps their learning path counter
func (s *LearningPathService) Save(ctx context.Context, userID kernel.UserID, req learningpath.SaveRequest) (*learningpath.SaveResponse, error) {
	now := s.now()
	input := req.InputData
	if len(input) == 0 || string(input) == "null" {
		input = emptyInput
	}

	lp := &learningpath.LearningPath{
		ID:              kernel.NewLearningPathID(uuid.NewString()),
		UserID:          userID,
		CareerPath:      req.CareerPath,
		Plan:            *req.LearningPathData,
		InputData:       input,
		Progress:        0,
		CompletedPhases: []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, lp); err != nil {
		return nil, learningpath.ErrRegistry.NewWithCause(learningpath.CodeSaveFailed, err)
	}
	if err := s.activity.RecordLearningPath(ctx, userID, now); err != nil {
		return nil, learningpath.ErrRegistry.NewWithCause(learningpath.CodeSaveFailed, err)
	}

	return &learningpath.SaveResponse{
		Success: true,
		Message: "Learning path saved successfully",
		PathID:  lp.ID,
		LearningPath: learningpath.SavedSummary{
			ID:         lp.ID,
			CareerPath: lp.CareerPath,
			Progress:   lp.Progress,
			CreatedAt:  lp.CreatedAt,
		},
	}, nil
}

func (s *LearningPathService) History(ctx context.Context, userID kernel.UserID) ([]learningpath.HistoryItem, error) {
	paths, err := s.Recent(ctx, userID, historyLimit)
	if err != nil {
		return nil, err
	}

	items := make([]learningpath.HistoryItem, 0, len(paths))
	for _, lp := range paths {
		items = append(items, lp.ToHistoryItem())
	}
	return items, nil
}

// Recent lists the newest saved paths, at most limit
func (s *LearningPathService) Recent(ctx context.Context, userID kernel.UserID, limit int) ([]*learningpath.LearningPath, error) {
	paths, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, learningpath.ErrRegistry.NewWithCause(learningpath.CodeFetchFailed, err)
	}
	if paths == nil {
		paths = []*learningpath.LearningPath{}
	}
	return paths, nil
}

func (s *LearningPathService) Delete(ctx context.Context, userID kernel.UserID, id kernel.LearningPathID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return err
		}
		return learningpath.ErrRegistry.NewWithCause(learningpath.CodeDeleteFailed, err)
	}
	return nil
}

// UpdateProgress replaces the completed phases of a saved path and
// recomputes its progress
func (s *LearningPathService) UpdateProgress(ctx context.Context, userID kernel.UserID, id kernel.LearningPathID, completed []string) (*learningpath.LearningPath, error) {
	lp, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := lp.SetCompletedPhases(completed); err != nil {
		return nil, err
	}
	lp.UpdatedAt = s.now()

	if err := s.repo.UpdateProgress(ctx, lp); err != nil {
		if errx.IsType(err, errx.TypeNotFound) {
			return nil, err
		}
		return nil, learningpath.ErrRegistry.NewWithCause(learningpath.CodeSaveFailed, err)
	}
	return lp, nil
}
