package memory_test

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/csg33k/underwriteai/internal/adapters/memory"
	"github.com/csg33k/underwriteai/internal/domain"
)

var idPattern = regexp.MustCompile(`^SUB-2024-\d{3}$`)

func fixedClock() time.Time { return time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC) }

func TestList_Seeded(t *testing.T) {
	repo := memory.NewSeeded()
	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].ID != "SUB-2024-001" || list[1].ID != "SUB-2024-002" {
		t.Errorf("ids = %s, %s", list[0].ID, list[1].ID)
	}
	if list[1].Status != domain.StatusApproved || list[1].RiskScore != 45 {
		t.Errorf("second record = %+v", list[1])
	}
}

func TestList_ReturnsCopies(t *testing.T) {
	repo := memory.NewSeeded()
	list, _ := repo.List(context.Background())
	list[0].ApplicantName = "Mallory"
	list[0].MedicalConditions[0] = "None"

	again, _ := repo.List(context.Background())
	if again[0].ApplicantName != "John Smith" || again[0].MedicalConditions[0] != "Hypertension" {
		t.Errorf("store mutated through List result: %+v", again[0])
	}
}

func TestCreate_JaneDoe(t *testing.T) {
	repo := memory.NewSeeded(memory.WithClock(fixedClock))
	got, err := repo.Create(context.Background(), domain.Submission{
		ApplicantName:  "Jane Doe",
		CoverageAmount: 100000,
		Status:         domain.StatusApproved, // overridden
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "SUB-2024-003" {
		t.Errorf("ID = %q, want SUB-2024-003", got.ID)
	}
	if got.Status != domain.StatusPending {
		t.Errorf("Status = %q, want pending", got.Status)
	}
	if got.SubmittedAt == nil || !got.SubmittedAt.Equal(fixedClock()) {
		t.Errorf("SubmittedAt = %v", got.SubmittedAt)
	}
	if len(got.AuditTrail) != 1 || got.AuditTrail[0].Action != "Submission created" {
		t.Errorf("AuditTrail = %+v", got.AuditTrail)
	}

	list, _ := repo.List(context.Background())
	if len(list) != 3 || list[2].ID != got.ID {
		t.Errorf("new record not appended: %d records", len(list))
	}
}

func TestCreate_IDsStrictlyIncrease(t *testing.T) {
	repo := memory.NewSeeded()
	prev := 2
	for i := 0; i < 20; i++ {
		s, err := repo.Create(context.Background(), domain.Submission{ApplicantName: "Applicant"})
		if err != nil {
			t.Fatal(err)
		}
		if !idPattern.MatchString(s.ID) {
			t.Fatalf("id %q does not match %s", s.ID, idPattern)
		}
		n, _ := domain.SubmissionSeq(s.ID)
		if n <= prev {
			t.Fatalf("id %q not greater than previous suffix %d", s.ID, prev)
		}
		prev = n
	}
}

func TestCreate_ConcurrentIDsUnique(t *testing.T) {
	repo := memory.New(nil)
	const n = 50
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := repo.Create(context.Background(), domain.Submission{ApplicantName: "Concurrent"})
			if err != nil {
				t.Error(err)
				return
			}
			ids[i] = s.ID
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
	list, _ := repo.List(context.Background())
	if len(list) != n {
		t.Errorf("len = %d, want %d", len(list), n)
	}
}

func TestCreate_CancelledContext(t *testing.T) {
	repo := memory.NewSeeded()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := repo.Create(ctx, domain.Submission{}); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

// Get serves the same record for any id; only the echoed id differs.
func TestGet_IgnoresID(t *testing.T) {
	repo := memory.NewSeeded()
	a, err := repo.Get(context.Background(), "SUB-2024-001")
	if err != nil {
		t.Fatal(err)
	}
	b, err := repo.Get(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != "SUB-2024-001" || b.ID != "does-not-exist" {
		t.Errorf("ids not echoed: %q %q", a.ID, b.ID)
	}
	b.ID = a.ID
	if !reflect.DeepEqual(a, b) {
		t.Errorf("payloads differ:\n%+v\n%+v", a, b)
	}
	if a.RiskAssessment == nil || a.RiskAssessment.RiskScore != 75 {
		t.Errorf("RiskAssessment = %+v", a.RiskAssessment)
	}
	if a.Documents.Len() != 3 || len(a.AuditTrail) != 4 {
		t.Errorf("documents %d, audit %d", a.Documents.Len(), len(a.AuditTrail))
	}
}

func TestUpdate_NotPersisted(t *testing.T) {
	repo := memory.NewSeeded(memory.WithClock(fixedClock))
	status := domain.StatusDeclined
	notes := "Outside appetite"
	got, err := repo.Update(context.Background(), "SUB-2024-002", domain.SubmissionUpdate{Status: &status, DecisionNotes: &notes})
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "SUB-2024-002" || got.Status != domain.StatusDeclined || got.DecisionNotes != notes {
		t.Errorf("update result = %+v", got)
	}
	if got.ApplicantName != "" {
		t.Errorf("synthetic record should only carry the id, got applicant %q", got.ApplicantName)
	}
	if got.UpdatedAt == nil || !got.UpdatedAt.Equal(fixedClock()) {
		t.Errorf("UpdatedAt = %v", got.UpdatedAt)
	}

	list, _ := repo.List(context.Background())
	if list[1].Status != domain.StatusApproved {
		t.Errorf("update leaked into store: %q", list[1].Status)
	}
}

func TestUpdate_RejectsUnknownStatus(t *testing.T) {
	repo := memory.NewSeeded()
	bad := domain.Status("archived")
	if _, err := repo.Update(context.Background(), "SUB-2024-001", domain.SubmissionUpdate{Status: &bad}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("got %v, want ErrInvalidStatus", err)
	}
}
