package dashboardsrv

import (
	"context"

	"github.com/Abraxas-365/pathway/guidance/dashboard"
	"github.com/Abraxas-365/pathway/pkg/iam/user"
)

type DashboardService struct {
	history dashboard.HistorySource
	paths   dashboard.PathSource
	stats   dashboard.StatsSource
}

func NewDashboardService(history dashboard.HistorySource, paths dashboard.PathSource, stats dashboard.StatsSource) *DashboardService {
	return &DashboardService{
		history: history,
		paths:   paths,
		stats:   stats,
	}
}

// Build assembles the dashboard of u, creating the stats row if missing
func (s *DashboardService) Build(ctx context.Context, u *user.User) (*dashboard.Dashboard, error) {
	st, err := s.stats.GetOrCreate(ctx, u.ID)
	if err != nil {
		return nil, dashboard.ErrFetchFailed(err)
	}

	history, err := s.history.RecentHistory(ctx, u.ID, dashboard.RecentLimit)
	if err != nil {
		return nil, dashboard.ErrFetchFailed(err)
	}

	paths, err := s.paths.Recent(ctx, u.ID, dashboard.RecentLimit)
	if err != nil {
		return nil, dashboard.ErrFetchFailed(err)
	}

	careers := make([]dashboard.CareerEntry, 0, len(history))
	for _, h := range history {
		careers = append(careers, dashboard.CareerEntry{
			ID:              h.ID,
			Career:          h.PredictedCareer,
			Confidence:      h.Confidence,
			Alternatives:    h.AlternativeCareers,
			Date:            h.CreatedAt,
			Recommendations: h.Recommendations,
		})
	}

	entries := make([]dashboard.PathEntry, 0, len(paths))
	for _, lp := range paths {
		entries = append(entries, dashboard.PathEntry{
			ID:       lp.ID,
			Career:   lp.CareerPath,
			Progress: lp.Progress,
			Date:     lp.CreatedAt,
		})
	}

	return &dashboard.Dashboard{
		Success: true,
		UserInfo: dashboard.UserInfo{
			ID:             u.ID,
			Name:           u.Name,
			Email:          u.Email,
			CreatedAt:      u.CreatedAt,
			ProfilePicture: u.ProfilePicture,
		},
		CareerHistory:    careers,
		LearningPaths:    entries,
		QuizStats:        dashboard.QuizStats{TopicsCovered: []string{}},
		TotalAssessments: st.TotalAssessments,
		LastActivity:     st.LastAssessmentDate,
		Stats: dashboard.Summary{
			PredictionsCount: st.TotalAssessments,
			PathsCount:       st.TotalLearningPathsGenerated,
			CompletionRate:   dashboard.CompletionRate(paths),
		},
	}, nil
}
