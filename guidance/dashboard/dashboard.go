// Package dashboard aggregates a user's activity into a single overview.
package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/Abraxas-365/pathway/guidance/learningpath"
	"github.com/Abraxas-365/pathway/guidance/prediction"
	"github.com/Abraxas-365/pathway/guidance/stats"
	"github.com/Abraxas-365/pathway/pkg/kernel"
)

const RecentLimit = 5

type UserInfo struct {
	ID             kernel.UserID `json:"id"`
	Name           string        `json:"name"`
	Email          kernel.Email  `json:"email"`
	CreatedAt      time.Time     `json:"created_at"`
	ProfilePicture *string       `json:"profile_picture"`
}

type CareerEntry struct {
	ID              kernel.CareerHistoryID         `json:"id"`
	Career          string                         `json:"career"`
	Confidence      float64                        `json:"confidence"`
	Alternatives    []prediction.AlternativeCareer `json:"alternatives"`
	Date            time.Time                      `json:"date"`
	Recommendations []string                       `json:"recommendations"`
}

type PathEntry struct {
	ID       kernel.LearningPathID `json:"id"`
	Career   string                `json:"career"`
	Progress int                   `json:"progress"`
	Date     time.Time             `json:"date"`
}

// QuizStats is reserved for the quiz feature and always zero
type QuizStats struct {
	TotalQuizzesTaken int      `json:"total_quizzes_taken"`
	AverageScore      float64  `json:"average_score"`
	TopicsCovered     []string `json:"topics_covered"`
}

type Summary struct {
	PredictionsCount int `json:"predictions_count"`
	PathsCount       int `json:"paths_count"`
	CompletionRate   int `json:"completion_rate"`
}

type Dashboard struct {
	Success          bool          `json:"success"`
	UserInfo         UserInfo      `json:"user_info"`
	CareerHistory    []CareerEntry `json:"career_history"`
	LearningPaths    []PathEntry   `json:"learning_paths"`
	QuizStats        QuizStats     `json:"quiz_stats"`
	TotalAssessments int           `json:"total_assessments"`
	LastActivity     *time.Time    `json:"last_activity"`
	Stats            Summary       `json:"stats"`
}

// CompletionRate is the rounded mean progress of the given paths, 0 when empty
func CompletionRate(paths []*learningpath.LearningPath) int {
	if len(paths) == 0 {
		return 0
	}
	total := 0
	for _, lp := range paths {
		total += lp.Progress
	}
	return int(math.Round(float64(total) / float64(len(paths))))
}

type HistorySource interface {
	RecentHistory(ctx context.Context, userID kernel.UserID, limit int) ([]*prediction.CareerHistory, error)
}

type PathSource interface {
	Recent(ctx context.Context, userID kernel.UserID, limit int) ([]*learningpath.LearningPath, error)
}

type StatsSource interface {
	GetOrCreate(ctx context.Context, userID kernel.UserID) (*stats.UserStats, error)
}
