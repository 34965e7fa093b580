package disbursement

import (
	"context"
	"testing"
	"time"

	"github.com/ruangpeduli/donation-backend/internal/domain"
)

type fakeRepo struct {
	disbursements []Disbursement
	activities    []DisbursementActivity
	files         []ActivityFile
}

func (f *fakeRepo) Create(_ context.Context, d *Disbursement) error {
	d.ID = uint(len(f.disbursements) + 1)
	d.CreatedAt = time.Now()
	f.disbursements = append(f.disbursements, *d)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*Disbursement, error) {
	for i := range f.disbursements {
		if f.disbursements[i].ID == id {
			return &f.disbursements[i], nil
		}
	}
	return nil, domain.NotFoundError{Resource: "disbursement"}
}

func (f *fakeRepo) ListPage(_ context.Context, offset, limit int) ([]Disbursement, error) {
	if offset >= len(f.disbursements) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.disbursements) {
		end = len(f.disbursements)
	}
	return f.disbursements[offset:end], nil
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.disbursements)), nil
}

func (f *fakeRepo) CreateActivity(_ context.Context, a *DisbursementActivity) error {
	a.ID = uint(len(f.activities) + 1)
	f.activities = append(f.activities, *a)
	return nil
}

func (f *fakeRepo) ListActivities(_ context.Context, disbursementID uint) ([]DisbursementActivity, error) {
	var out []DisbursementActivity
	for _, a := range f.activities {
		if a.DisbursementID == disbursementID {
			out = append(out, a)
		}
	}
	// mirror the repository's activity_date ordering
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].ActivityDate.Before(out[j-1].ActivityDate); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateFile(_ context.Context, file *ActivityFile) error {
	file.ID = uint(len(f.files) + 1)
	f.files = append(f.files, *file)
	return nil
}

func (f *fakeRepo) ListFiles(_ context.Context, activityID uint) ([]ActivityFile, error) {
	var out []ActivityFile
	for _, file := range f.files {
		if file.ActivityID == activityID {
			out = append(out, file)
		}
	}
	return out, nil
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	if _, err := svc.Create(context.Background(), CreateDisbursementRequest{Amount: 0, Description: "x"}); !domain.IsValidation(err) {
		t.Errorf("zero amount: err = %v, want validation error", err)
	}
	if _, err := svc.Create(context.Background(), CreateDisbursementRequest{Amount: -5, Description: "x"}); !domain.IsValidation(err) {
		t.Errorf("negative amount: err = %v, want validation error", err)
	}
	if _, err := svc.Create(context.Background(), CreateDisbursementRequest{Amount: 1000}); !domain.IsValidation(err) {
		t.Errorf("empty description: err = %v, want validation error", err)
	}
}

func TestCreateSanitizesDescription(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	d, err := svc.Create(context.Background(), CreateDisbursementRequest{
		Amount:      500000,
		Description: "bantuan <script>alert(1)</script> tahap 1",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if d.Description != "bantuan alert(1) tahap 1" {
		t.Fatalf("description = %q, tags must be stripped", d.Description)
	}
}

func TestCreateActivityUnknownDisbursement(t *testing.T) {
	svc := NewService(&fakeRepo{})
	_, err := svc.CreateActivity(context.Background(), 42, CreateActivityRequest{
		ActivityDate: "2026-01-15",
		Description:  "penyaluran",
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestCreateActivityWithFiles(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	d, _ := svc.Create(context.Background(), CreateDisbursementRequest{Amount: 100000, Description: "tahap 1"})

	tree, err := svc.CreateActivity(context.Background(), d.ID, CreateActivityRequest{
		ActivityDate: "2026-02-01",
		Description:  "pembelian sembako",
		Files: []ActivityFileInput{
			{FileURL: "https://cdn.example/a.jpg", DisplayName: "nota"},
			{FileURL: "https://cdn.example/b.jpg", DisplayName: "foto", FileType: "image/jpeg"},
		},
	})
	if err != nil {
		t.Fatalf("CreateActivity error: %v", err)
	}
	if len(tree.Files) != 2 {
		t.Fatalf("files = %d, want 2", len(tree.Files))
	}
	want := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if !tree.ActivityDate.Equal(want) {
		t.Fatalf("activity date = %v, want %v", tree.ActivityDate, want)
	}
	if tree.Files[0].ActivityID != tree.ID {
		t.Fatalf("file not linked to activity: %+v", tree.Files[0])
	}
}

func TestCreateActivityDateValidation(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	d, _ := svc.Create(context.Background(), CreateDisbursementRequest{Amount: 100000, Description: "tahap 1"})

	for _, raw := range []string{"", "not-a-date", "01/02/2026"} {
		_, err := svc.CreateActivity(context.Background(), d.ID, CreateActivityRequest{
			ActivityDate: raw,
			Description:  "x",
		})
		if !domain.IsValidation(err) {
			t.Errorf("date %q: err = %v, want validation error", raw, err)
		}
	}

	// RFC 3339 also accepted
	_, err := svc.CreateActivity(context.Background(), d.ID, CreateActivityRequest{
		ActivityDate: "2026-02-01T10:30:00+07:00",
		Description:  "x",
	})
	if err != nil {
		t.Fatalf("RFC 3339 date rejected: %v", err)
	}
}

func TestCreateActivityFileURLRequired(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	d, _ := svc.Create(context.Background(), CreateDisbursementRequest{Amount: 100000, Description: "tahap 1"})

	_, err := svc.CreateActivity(context.Background(), d.ID, CreateActivityRequest{
		ActivityDate: "2026-02-01",
		Description:  "x",
		Files:        []ActivityFileInput{{DisplayName: "nota"}},
	})
	if !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if len(repo.activities) != 0 {
		t.Fatal("activity written despite invalid file input")
	}
}

func TestPublicFeedOrdersActivitiesByDate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	d, _ := svc.Create(context.Background(), CreateDisbursementRequest{Amount: 100000, Description: "tahap 1"})

	// insert out of chronological order
	if _, err := svc.CreateActivity(context.Background(), d.ID, CreateActivityRequest{ActivityDate: "2026-03-10", Description: "later"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateActivity(context.Background(), d.ID, CreateActivityRequest{ActivityDate: "2026-01-05", Description: "earlier"}); err != nil {
		t.Fatal(err)
	}

	trees, total, err := svc.PublicFeed(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("PublicFeed error: %v", err)
	}
	if total != 1 || len(trees) != 1 {
		t.Fatalf("total=%d len=%d, want 1/1", total, len(trees))
	}
	acts := trees[0].Activities
	if len(acts) != 2 {
		t.Fatalf("activities = %d, want 2", len(acts))
	}
	if acts[0].Description != "earlier" || acts[1].Description != "later" {
		t.Fatalf("activities not ordered by activity date: %q then %q", acts[0].Description, acts[1].Description)
	}
	if acts[0].Files == nil {
		t.Fatal("files must be an empty slice, not nil, so JSON renders []")
	}
}
