package resumesrv

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Abraxas-365/pathway/guidance/prediction"
	"github.com/Abraxas-365/pathway/guidance/resume"
	"github.com/Abraxas-365/pathway/pkg/fsx"
	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/Abraxas-365/pathway/pkg/logx"
	"github.com/google/uuid"
)

type ResumeService struct {
	repo      resume.Repository
	files     fsx.FileSystem
	extractor resume.TextExtractor
	predictor resume.Predictor
	activity  resume.ActivityRecorder
	now       func() time.Time
}

func NewResumeService(
	repo resume.Repository,
	files fsx.FileSystem,
	extractor resume.TextExtractor,
	predictor resume.Predictor,
	activity resume.ActivityRecorder,
) *ResumeService {
	return &ResumeService{
		repo:      repo,
		files:     files,
		extractor: extractor,
		predictor: predictor,
		activity:  activity,
		now:       time.Now,
	}
}

// IsPDF reports whether the file name has a .pdf extension
func IsPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// PredictFromResume stores the upload, extracts its skills and runs the
// prediction flow with them
func (s *ResumeService) PredictFromResume(ctx context.Context, userID kernel.UserID, up resume.Upload) (*prediction.PredictResponse, error) {
	if len(up.Data) == 0 {
		return nil, resume.ErrFileRequired()
	}
	if !IsPDF(up.FileName) {
		return nil, resume.ErrPDFOnly()
	}
	if len(up.Data) > resume.MaxFileSize {
		return nil, resume.ErrFileTooLarge(int64(len(up.Data)))
	}

	text, err := s.extractor.ExtractText(up.Data)
	if err != nil {
		return nil, resume.ErrUnreadable(err)
	}
	parsed := resume.ExtractKeywords(text)

	now := s.now()
	id := kernel.NewResumeID(uuid.NewString())

	// resumes/{user}/{yyyy}/{mm}/{uuid}.pdf
	path := s.files.Join(
		"resumes",
		userID.String(),
		fmt.Sprintf("%d", now.Year()),
		fmt.Sprintf("%02d", now.Month()),
		id.String()+".pdf",
	)
	if err := s.files.WriteFile(ctx, path, up.Data); err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeUploadFailed, err)
	}

	entry := &resume.Resume{
		ID:            id,
		UserID:        userID,
		FileName:      filepath.Base(up.FileName),
		FilePath:      path,
		FileSize:      int64(len(up.Data)),
		ExtractedText: resume.StoredText(text),
		ParsedData:    parsed,
		CreatedAt:     now,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		if delErr := s.files.DeleteFile(ctx, path); delErr != nil {
			logx.Warnf("failed to remove orphaned resume %s: %v", path, delErr)
		}
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeSaveFailed, err)
	}
	if err := s.activity.RecordResumeUpload(ctx, userID, now); err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeSaveFailed, err)
	}

	logx.Infow("resume stored", "resume_id", id, "user_id", userID, "skills", len(parsed.Skills))

	result, err := s.predictor.Predict(ctx, userID, prediction.CandidateProfile{
		Education:       resume.AssumedEducation,
		YearsExperience: resume.AssumedYears,
		Skills:          parsed.Skills,
		Interests:       parsed.Interests,
	})
	if err != nil {
		return nil, err
	}

	return &prediction.PredictResponse{
		Success:          true,
		CareerPrediction: *result,
		ResumeID:         id,
	}, nil
}
