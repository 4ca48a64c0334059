package intake_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/csg33k/underwriteai/internal/adapters/simulator"
	"github.com/csg33k/underwriteai/internal/domain"
	"github.com/csg33k/underwriteai/internal/intake"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type recordingExtractor struct {
	calls *[]string
	err   error
}

func (r recordingExtractor) Extract(context.Context, []domain.DocumentRef) (domain.ExtractedData, error) {
	*r.calls = append(*r.calls, "extract")
	return domain.ExtractedData{ApplicantName: "Test"}, r.err
}

type recordingScorer struct {
	calls *[]string
}

func (r recordingScorer) Score(_ context.Context, d domain.ExtractedData) (domain.RiskAssessment, error) {
	*r.calls = append(*r.calls, "score:"+d.ApplicantName)
	return domain.RiskAssessment{RiskScore: 10}, nil
}

func TestProcess_RoundTrip(t *testing.T) {
	svc := intake.New(simulator.NewExtractor(20*time.Millisecond), simulator.NewScorer(10*time.Millisecond), quiet)
	docs := []domain.DocumentRef{{Name: "Application Form.pdf", Type: "application", Size: "2.3 MB"}}

	start := time.Now()
	res, err := svc.Process(context.Background(), docs)
	if err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("returned after %v, want both delays to elapse", elapsed)
	}
	if _, err := uuid.Parse(res.ProcessingID); err != nil {
		t.Errorf("processing id %q: %v", res.ProcessingID, err)
	}
	if res.ExtractedData.ExtractionConfidence != 0.92 {
		t.Errorf("extraction confidence = %v", res.ExtractedData.ExtractionConfidence)
	}
	if res.RiskAssessment.RiskScore != 75 || res.RiskAssessment.Confidence != 0.85 {
		t.Errorf("assessment = %+v", res.RiskAssessment)
	}
	if len(res.Documents) != 1 || res.Documents[0].ID == "" {
		t.Errorf("documents = %+v", res.Documents)
	}
}

func TestProcess_ScoresAfterExtraction(t *testing.T) {
	var calls []string
	svc := intake.New(recordingExtractor{calls: &calls}, recordingScorer{calls: &calls}, quiet)
	if _, err := svc.Process(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 2 || calls[0] != "extract" || calls[1] != "score:Test" {
		t.Errorf("calls = %v", calls)
	}
}

func TestProcess_ExtractionErrorSkipsScoring(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	svc := intake.New(recordingExtractor{calls: &calls, err: boom}, recordingScorer{calls: &calls}, quiet)
	if _, err := svc.Process(context.Background(), nil); !errors.Is(err, boom) {
		t.Fatalf("got %v, want wrapped boom", err)
	}
	if len(calls) != 1 {
		t.Errorf("calls = %v", calls)
	}
}

func TestProcess_Cancelled(t *testing.T) {
	svc := intake.New(simulator.NewExtractor(time.Hour), simulator.NewScorer(time.Hour), quiet)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Process(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestResult_Submission(t *testing.T) {
	svc := intake.New(simulator.NewExtractor(0), simulator.NewScorer(0), quiet)
	res, err := svc.Process(context.Background(), []domain.DocumentRef{{Name: "a.pdf"}, {Name: "b.pdf"}})
	if err != nil {
		t.Fatal(err)
	}
	s := res.Submission()
	if s.ApplicantName != "John Smith" || s.RiskScore != 75 || s.Documents.Len() != 2 {
		t.Errorf("submission = %+v", s)
	}
	if s.ID != "" || s.Status != "" {
		t.Errorf("id/status should be left to the repository: %q %q", s.ID, s.Status)
	}
}
