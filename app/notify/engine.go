package notify

import (
	"fmt"
	"log/slog"

	"github.com/rkawale/mediawatch/app/database"
)

// Channel delivery statuses. Email dispatch is handled downstream, so its log
// entry is recorded as sent; sms/push/in_app wait on integrations that do not
// exist yet and are logged pending.
var channelStatus = map[string]string{
	"email":  "sent",
	"sms":    "pending",
	"push":   "pending",
	"in_app": "pending",
}

// ShouldNotify decides whether an alert fires for one officer preference.
// Fires on sentiment below the officer's threshold OR overall bias above it.
func ShouldNotify(analysis *database.AnalysisRecord, pref *database.NotificationPreference) bool {
	if pref == nil || !pref.Enabled {
		return false
	}
	return analysis.SentimentScore < pref.SentimentThreshold ||
		analysis.BiasOverall > pref.BiasThreshold
}

// Engine evaluates persisted analyses against officer preferences and records
// the delivery decision. Actual dispatch is an external collaborator.
type Engine struct {
	officerRepo database.OfficerRepository
	logRepo     database.NotificationRepository
}

func NewEngine(officerRepo database.OfficerRepository, logRepo database.NotificationRepository) *Engine {
	return &Engine{officerRepo: officerRepo, logRepo: logRepo}
}

// Run evaluates every active officer in the article's primary department and
// logs one entry per enabled channel on each firing officer. Returns the
// number of officers notified.
func (e *Engine) Run(article *database.Article, analysis *database.AnalysisRecord, notifType string) (int, error) {
	if article.PrimaryDepartmentID == "" {
		return 0, nil
	}

	officers, err := e.officerRepo.GetActiveOfficersByDepartment(article.PrimaryDepartmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to load officers: %w", err)
	}

	notified := 0
	for _, officer := range officers {
		pref, err := e.officerRepo.GetPreference(officer.ID)
		if err != nil {
			slog.Warn("Failed to load notification preference, skipping officer",
				"officer", officer.ID, "error", err)
			continue
		}
		if !ShouldNotify(analysis, pref) {
			continue
		}

		for _, channel := range pref.Channels {
			status, ok := channelStatus[channel]
			if !ok {
				status = "pending"
			}
			entry := &database.NotificationLog{
				ArticleID: article.ID,
				OfficerID: officer.ID,
				Channel:   channel,
				Type:      notifType,
				Status:    status,
				Message: fmt.Sprintf("Alert for %q: sentiment %.2f, bias %.1f (%s)",
					article.Title, analysis.SentimentScore, analysis.BiasOverall, analysis.BiasClassification),
			}
			if err := e.logRepo.LogNotification(entry); err != nil {
				slog.Warn("Failed to log notification", "officer", officer.ID, "channel", channel, "error", err)
			}
		}
		notified++
	}

	return notified, nil
}
