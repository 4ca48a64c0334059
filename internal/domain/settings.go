package domain

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Settings holds the underwriter's profile, notification and AI preferences.
type Settings struct {
	// Profile
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email"`
	Role  string `yaml:"role" json:"role"`

	// Notifications
	EmailNotifications bool `yaml:"email_notifications" json:"emailNotifications"`
	RiskAlerts         bool `yaml:"risk_alerts" json:"riskAlerts"`
	DailyReports       bool `yaml:"daily_reports" json:"dailyReports"`

	// AI
	RiskThreshold       int     `yaml:"risk_threshold" json:"riskThreshold"`
	AutoApprovalLimit   float64 `yaml:"auto_approval_limit" json:"autoApprovalLimit"` // CAD
	ConfidenceThreshold int     `yaml:"confidence_threshold" json:"confidenceThreshold"` // percent

	// System
	Language      string `yaml:"language" json:"language"`
	Timezone      string `yaml:"timezone" json:"timezone"`
	DataRetention int    `yaml:"data_retention" json:"dataRetention"` // years
}

// DefaultSettings are the values a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		Name:                "Demo User",
		Email:               "demo@underwriteai.com",
		Role:                "Senior Underwriter",
		EmailNotifications:  true,
		RiskAlerts:          true,
		DailyReports:        false,
		RiskThreshold:       70,
		AutoApprovalLimit:   100000,
		ConfidenceThreshold: 85,
		Language:            "en",
		Timezone:            "America/Toronto",
		DataRetention:       7,
	}
}

// Option is a value/label pair offered by a select input.
type Option struct {
	Value string
	Label string
}

var (
	RoleOptions = []Option{
		{"Senior Underwriter", "Senior Underwriter"},
		{"Junior Underwriter", "Junior Underwriter"},
		{"Underwriting Manager", "Underwriting Manager"},
		{"Risk Analyst", "Risk Analyst"},
	}
	RiskThresholdOptions = []Option{
		{"60", "60 - Low Threshold"},
		{"70", "70 - Medium Threshold"},
		{"80", "80 - High Threshold"},
	}
	LanguageOptions = []Option{
		{"en", "English"},
		{"fr", "Français"},
	}
	TimezoneOptions = []Option{
		{"America/Toronto", "Eastern Time (Toronto)"},
		{"America/Vancouver", "Pacific Time (Vancouver)"},
		{"America/Winnipeg", "Central Time (Winnipeg)"},
		{"America/Halifax", "Atlantic Time (Halifax)"},
	}
	DataRetentionOptions = []Option{
		{"5", "5 Years"},
		{"7", "7 Years"},
		{"10", "10 Years"},
	}
)

// Validate rejects values the settings form could never have produced.
func (s Settings) Validate() error {
	if s.ConfidenceThreshold < 0 || s.ConfidenceThreshold > 100 {
		return fmt.Errorf("confidence threshold %d out of range 0-100", s.ConfidenceThreshold)
	}
	if s.AutoApprovalLimit < 0 {
		return fmt.Errorf("auto-approval limit must not be negative")
	}
	if s.DataRetention <= 0 {
		return fmt.Errorf("data retention must be at least one year")
	}
	if s.Timezone != "" {
		if _, err := time.LoadLocation(s.Timezone); err != nil {
			return fmt.Errorf("timezone %q: %w", s.Timezone, err)
		}
	}
	return nil
}
