package dashboard

import (
	"testing"

	"github.com/Abraxas-365/pathway/guidance/learningpath"
	"github.com/stretchr/testify/assert"
)

func TestCompletionRate(t *testing.T) {
	paths := func(progress ...int) []*learningpath.LearningPath {
		out := make([]*learningpath.LearningPath, 0, len(progress))
		for _, p := range progress {
			out = append(out, &learningpath.LearningPath{Progress: p})
		}
		return out
	}

	tests := []struct {
		name  string
		paths []*learningpath.LearningPath
		want  int
	}{
		{name: "none", paths: nil, want: 0},
		{name: "single", paths: paths(40), want: 40},
		{name: "mean", paths: paths(33, 67), want: 50},
		{name: "half rounds up", paths: paths(33, 34), want: 34},
		{name: "rounds down", paths: paths(0, 0, 100), want: 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionRate(tt.paths))
		})
	}
}
