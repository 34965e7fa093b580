package disbursement

import (
	"context"
	"time"

	"github.com/ruangpeduli/donation-backend/internal/domain"
	"github.com/ruangpeduli/donation-backend/internal/validation"
	"github.com/ruangpeduli/donation-backend/utils"
)

type Service interface {
	Create(ctx context.Context, req CreateDisbursementRequest) (*Disbursement, error)
	PublicFeed(ctx context.Context, page, limit int) ([]DisbursementTree, int64, error)
	ListActivities(ctx context.Context, disbursementID uint) ([]ActivityTree, error)
	CreateActivity(ctx context.Context, disbursementID uint, req CreateActivityRequest) (*ActivityTree, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateDisbursementRequest) (*Disbursement, error) {
	if req.Amount <= 0 {
		return nil, domain.ValidationError{Field: "amount", Msg: "amount must be positive"}
	}
	desc := validation.SanitizeMessage(req.Description)
	if desc == "" {
		return nil, domain.ValidationError{Field: "description", Msg: "description is required"}
	}

	d := &Disbursement{
		Amount:      req.Amount,
		Description: desc,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	utils.Emit("disbursement_recorded", map[string]any{
		"disbursement_id": d.ID,
		"amount":          d.Amount,
	})
	return d, nil
}

// PublicFeed returns one page of disbursements, each carrying its full
// activity timeline and file pointers. Activities and files are loaded
// with per-row follow-up queries; fine at this dataset size.
func (s *service) PublicFeed(ctx context.Context, page, limit int) ([]DisbursementTree, int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	rows, err := s.repo.ListPage(ctx, utils.Offset(page, limit), limit)
	if err != nil {
		return nil, 0, err
	}

	trees := make([]DisbursementTree, 0, len(rows))
	for _, d := range rows {
		activities, err := s.activityTrees(ctx, d.ID)
		if err != nil {
			return nil, 0, err
		}
		trees = append(trees, DisbursementTree{Disbursement: d, Activities: activities})
	}
	return trees, total, nil
}

func (s *service) ListActivities(ctx context.Context, disbursementID uint) ([]ActivityTree, error) {
	if _, err := s.repo.GetByID(ctx, disbursementID); err != nil {
		return nil, err
	}
	return s.activityTrees(ctx, disbursementID)
}

func (s *service) CreateActivity(ctx context.Context, disbursementID uint, req CreateActivityRequest) (*ActivityTree, error) {
	if _, err := s.repo.GetByID(ctx, disbursementID); err != nil {
		return nil, err
	}
	activityDate, err := parseActivityDate(req.ActivityDate)
	if err != nil {
		return nil, err
	}
	desc := validation.SanitizeMessage(req.Description)
	if desc == "" {
		return nil, domain.ValidationError{Field: "description", Msg: "description is required"}
	}
	for i, f := range req.Files {
		if f.FileURL == "" {
			return nil, domain.ValidationError{Field: "files", Msg: "file_url is required"}
		}
		req.Files[i].DisplayName = validation.SanitizeText(f.DisplayName)
	}

	a := &DisbursementActivity{
		DisbursementID: disbursementID,
		ActivityDate:   activityDate,
		Description:    desc,
	}
	if err := s.repo.CreateActivity(ctx, a); err != nil {
		return nil, err
	}

	files := make([]ActivityFile, 0, len(req.Files))
	for _, in := range req.Files {
		f := ActivityFile{
			ActivityID:  a.ID,
			FileURL:     in.FileURL,
			DisplayName: in.DisplayName,
			FileType:    validation.SanitizeText(in.FileType),
		}
		if err := s.repo.CreateFile(ctx, &f); err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	utils.Emit("disbursement_activity_recorded", map[string]any{
		"disbursement_id": disbursementID,
		"activity_id":     a.ID,
		"files":           len(files),
	})
	return &ActivityTree{DisbursementActivity: *a, Files: files}, nil
}

func (s *service) activityTrees(ctx context.Context, disbursementID uint) ([]ActivityTree, error) {
	activities, err := s.repo.ListActivities(ctx, disbursementID)
	if err != nil {
		return nil, err
	}
	trees := make([]ActivityTree, 0, len(activities))
	for _, a := range activities {
		files, err := s.repo.ListFiles(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		if files == nil {
			files = []ActivityFile{}
		}
		trees = append(trees, ActivityTree{DisbursementActivity: a, Files: files})
	}
	return trees, nil
}

func parseActivityDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, domain.ValidationError{Field: "activity_date", Msg: "activity_date is required"}
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ValidationError{Field: "activity_date", Msg: "activity_date must be YYYY-MM-DD or RFC 3339"}
}
