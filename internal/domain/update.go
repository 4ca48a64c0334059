package domain

import "time"

// SubmissionUpdate carries the fields a caller wants to change. Nil fields
// are left alone.
type SubmissionUpdate struct {
	ApplicantName     *string        `json:"applicantName,omitempty"`
	DateOfBirth       *string        `json:"dateOfBirth,omitempty"`
	Occupation        *string        `json:"occupation,omitempty"`
	Smoker            *bool          `json:"smoker,omitempty"`
	MedicalConditions *[]string      `json:"medicalConditions,omitempty"`
	CoverageAmount    *float64       `json:"coverageAmount,omitempty"`
	InsuranceType     *InsuranceType `json:"insuranceType,omitempty"`
	Status            *Status        `json:"status,omitempty"`
	RiskScore         *int           `json:"riskScore,omitempty"`
	DecisionNotes     *string        `json:"decisionNotes,omitempty"`
}

// Validate checks field values that can be checked without the current record.
func (u SubmissionUpdate) Validate() error {
	if u.Status != nil {
		if _, err := ParseStatus(string(*u.Status)); err != nil {
			return err
		}
	}
	return nil
}

// Apply copies every set field onto s and stamps UpdatedAt.
func (u SubmissionUpdate) Apply(s *Submission, now time.Time) {
	if u.ApplicantName != nil {
		s.ApplicantName = *u.ApplicantName
	}
	if u.DateOfBirth != nil {
		s.DateOfBirth = *u.DateOfBirth
	}
	if u.Occupation != nil {
		s.Occupation = *u.Occupation
	}
	if u.Smoker != nil {
		s.Smoker = *u.Smoker
	}
	if u.MedicalConditions != nil {
		s.MedicalConditions = append([]string(nil), (*u.MedicalConditions)...)
	}
	if u.CoverageAmount != nil {
		s.CoverageAmount = *u.CoverageAmount
	}
	if u.InsuranceType != nil {
		s.InsuranceType = *u.InsuranceType
	}
	if u.Status != nil {
		s.Status = *u.Status
	}
	if u.RiskScore != nil {
		s.RiskScore = *u.RiskScore
	}
	if u.DecisionNotes != nil {
		s.DecisionNotes = *u.DecisionNotes
	}
	s.UpdatedAt = &now
}
