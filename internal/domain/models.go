package domain

import (
	"bytes"
	"time"

	"github.com/goccy/go-json"
)

// InsuranceType is the product line an application is for.
type InsuranceType string

const (
	InsuranceLife       InsuranceType = "Life Insurance"
	InsuranceHealth     InsuranceType = "Health Insurance"
	InsuranceDisability InsuranceType = "Disability Insurance"
)

// InsuranceTypes lists the product lines in the order the intake form offers them.
func InsuranceTypes() []InsuranceType {
	return []InsuranceType{InsuranceLife, InsuranceHealth, InsuranceDisability}
}

// DocumentRef describes one uploaded document. Size is a display label
// ("2.3 MB"), not a parsed byte count.
type DocumentRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size string `json:"size"`
}

// Documents is either a bare count (list views) or the full list of
// references (detail views). On the wire it is a JSON number or array.
type Documents struct {
	Count int
	Items []DocumentRef
}

// DocumentCount returns a Documents that only knows how many files exist.
func DocumentCount(n int) *Documents { return &Documents{Count: n} }

// DocumentList returns a Documents carrying the references themselves.
func DocumentList(items ...DocumentRef) *Documents {
	if items == nil {
		items = []DocumentRef{}
	}
	return &Documents{Count: len(items), Items: items}
}

// Len is the number of documents regardless of representation.
func (d *Documents) Len() int {
	if d == nil {
		return 0
	}
	if d.Items != nil {
		return len(d.Items)
	}
	return d.Count
}

func (d Documents) MarshalJSON() ([]byte, error) {
	if d.Items != nil {
		return json.Marshal(d.Items)
	}
	return json.Marshal(d.Count)
}

func (d *Documents) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*d = Documents{}
		return nil
	case b[0] == '[':
		var items []DocumentRef
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*d = Documents{Count: len(items), Items: items}
		return nil
	default:
		var n int
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*d = Documents{Count: n}
		return nil
	}
}

// RiskFactor is one contribution to a risk assessment.
type RiskFactor struct {
	Factor      string `json:"factor"`
	Impact      string `json:"impact"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// RiskAssessment is a scored evaluation of a submission. Score and the
// factor scores are independent values; nothing ties one to the sum of the other.
type RiskAssessment struct {
	RiskScore      int          `json:"riskScore"`
	RiskLevel      string       `json:"riskLevel"`
	Factors        []RiskFactor `json:"factors"`
	Recommendation string       `json:"recommendation"`
	Confidence     float64      `json:"confidence"`
	ProcessingTime string       `json:"processingTime,omitempty"`
}

// AuditEntry records one event in a submission's history.
type AuditEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	User      string    `json:"user"`
	Details   string    `json:"details"`
}

// ExtractedData is what document extraction pulls out of an application packet.
type ExtractedData struct {
	ApplicantName        string        `json:"applicantName"`
	DateOfBirth          string        `json:"dateOfBirth"`
	Occupation           string        `json:"occupation"`
	Smoker               bool          `json:"smoker"`
	MedicalConditions    []string      `json:"medicalConditions"`
	CoverageAmount       float64       `json:"coverageAmount"`
	InsuranceType        InsuranceType `json:"insuranceType"`
	ExtractionConfidence float64       `json:"extractionConfidence"`
}

// Submission is an underwriting application record.
type Submission struct {
	ID                string          `json:"id"`
	ApplicantName     string          `json:"applicantName,omitempty"`
	DateOfBirth       string          `json:"dateOfBirth,omitempty"`
	Occupation        string          `json:"occupation,omitempty"`
	Smoker            bool            `json:"smoker"`
	MedicalConditions []string        `json:"medicalConditions,omitempty"`
	CoverageAmount    float64         `json:"coverageAmount,omitempty"`
	InsuranceType     InsuranceType   `json:"insuranceType,omitempty"`
	SubmittedAt       *time.Time      `json:"submittedAt,omitempty"`
	UpdatedAt         *time.Time      `json:"updatedAt,omitempty"`
	Status            Status          `json:"status,omitempty"`
	Documents         *Documents      `json:"documents,omitempty"`
	RiskScore         int             `json:"riskScore,omitempty"`
	RiskAssessment    *RiskAssessment `json:"riskAssessment,omitempty"`
	AuditTrail        []AuditEntry    `json:"auditTrail,omitempty"`
	DecisionNotes     string          `json:"decisionNotes,omitempty"`
}

// Score returns the assessment score when present, else the list-view score.
func (s *Submission) Score() int {
	if s.RiskAssessment != nil {
		return s.RiskAssessment.RiskScore
	}
	return s.RiskScore
}

// FromExtraction builds the fields of a new submission out of extracted data
// and, when present, its risk assessment. ID, status and timestamps are left
// to the repository.
func FromExtraction(e ExtractedData, ra *RiskAssessment, docs []DocumentRef) Submission {
	s := Submission{
		ApplicantName:     e.ApplicantName,
		DateOfBirth:       e.DateOfBirth,
		Occupation:        e.Occupation,
		Smoker:            e.Smoker,
		MedicalConditions: e.MedicalConditions,
		CoverageAmount:    e.CoverageAmount,
		InsuranceType:     e.InsuranceType,
		RiskAssessment:    ra,
	}
	if ra != nil {
		s.RiskScore = ra.RiskScore
	}
	if len(docs) > 0 {
		s.Documents = DocumentList(docs...)
	}
	return s
}
