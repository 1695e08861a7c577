package models

import (
	"time"

	"gorm.io/gorm"
)

// AlertSeverity is the user-visible severity of an alert.
type AlertSeverity string

const (
	AlertSeverityInfo    AlertSeverity = "info"
	AlertSeverityWarning AlertSeverity = "warning"
	AlertSeverityError   AlertSeverity = "error"
)

// AlertType categorizes what an alert is about.
type AlertType string

const (
	AlertTypeInfo      AlertType = "info"
	AlertTypeWarning   AlertType = "warning"
	AlertTypeError     AlertType = "error"
	AlertTypeOverrun   AlertType = "overrun"
	AlertTypeAnomaly   AlertType = "anomaly"
	AlertTypeShortfall AlertType = "shortfall"
)

// Alert is a session-lived notification. Alerts accumulate in an
// append-only sequence with no deduplication and no expiry.
type Alert struct {
	DefaultModel
	Type        AlertType     `json:"type" example:"info"`
	Message     string        `json:"message" example:"Scenario \"Aggressive Growth\" analyzed."`
	Date        time.Time     `json:"date" example:"2024-07-02T19:28:44.491514Z"`
	Severity    AlertSeverity `json:"severity" example:"info"`
	RelatedItem string        `json:"relatedItem,omitempty" example:"65392deb-5e92-4268-b114-297faad6cdce"`
}

func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	if a.Date.IsZero() {
		a.Date = time.Now().In(time.UTC)
	}

	return nil
}

// Alerts returns all alerts, newest first.
func Alerts(db *gorm.DB) ([]Alert, error) {
	var alerts []Alert
	err := db.Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

// AppendAlert appends a new alert to the session's alert sequence.
func AppendAlert(db *gorm.DB, alertType AlertType, severity AlertSeverity, message string, relatedItem string) (Alert, error) {
	alert := Alert{
		Type:        alertType,
		Severity:    severity,
		Message:     message,
		RelatedItem: relatedItem,
	}

	err := db.Create(&alert).Error
	return alert, err
}
