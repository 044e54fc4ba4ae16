package growth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Pure payload -> stored-document conversions. Defaults and clamping live
// here so the transport layer stays a thin shim and the rules are testable
// without HTTP.

const (
	DefaultLevel            = "Junior"
	DefaultGoalStatus       = "not_started"
	DefaultReviewStatus     = "open"
	DefaultMentorshipStatus = "active"

	RatingMin = 1
	RatingMax = 4
)

// dateLayouts accepted for target_date / start_date, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseFlexibleDate parses an ISO date/datetime. On failure the raw string is
// returned unchanged; a bad date is not an error.
func parseFlexibleDate(s string) interface{} {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC()
		}
	}
	return s
}

// ClampRating coerces a JSON rating value to an int in [RatingMin, RatingMax].
// Non-numeric values become RatingMin.
func ClampRating(v interface{}) int {
	iv := RatingMin
	switch n := v.(type) {
	case int:
		iv = n
	case int32:
		iv = int(n)
	case int64:
		iv = int(n)
	case float64:
		iv = int(n)
	case float32:
		iv = int(n)
	}
	if iv < RatingMin {
		iv = RatingMin
	}
	if iv > RatingMax {
		iv = RatingMax
	}
	return iv
}

func (p CreateDesigner) Document() bson.M {
	level := p.CurrentLevel
	if level == "" {
		level = DefaultLevel
	}
	guilds := p.Guilds
	if guilds == nil {
		guilds = []string{}
	}
	return bson.M{
		"name":          p.Name,
		"email":         p.Email,
		"manager_id":    p.ManagerID,
		"current_level": level,
		"guilds":        guilds,
	}
}

func (p CreateGoal) Document() bson.M {
	status := p.Status
	if status == "" {
		status = DefaultGoalStatus
	}
	progress := 0
	if p.Progress != nil {
		progress = *p.Progress
	}
	doc := bson.M{
		"designer_id":    p.DesignerID,
		"title":          p.Title,
		"description":    p.Description,
		"competency_key": p.CompetencyKey,
		"status":         status,
		"progress":       progress,
	}
	if p.TargetDate != nil && *p.TargetDate != "" {
		doc["target_date"] = parseFlexibleDate(*p.TargetDate)
	} else {
		doc["target_date"] = nil
	}
	return doc
}

func (p CreateAssessment) Document() bson.M {
	ratings := bson.M{}
	for key, v := range p.Ratings {
		ratings[key] = ClampRating(v)
	}
	return bson.M{
		"designer_id": p.DesignerID,
		"cycle":       p.Cycle,
		"ratings":     ratings,
		"notes":       p.Notes,
	}
}

func (p CreateReview) Document() bson.M {
	status := p.Status
	if status == "" {
		status = DefaultReviewStatus
	}
	peerEvals := p.PeerEvals
	if peerEvals == nil {
		peerEvals = []map[string]int{}
	}
	return bson.M{
		"designer_id":  p.DesignerID,
		"cycle":        p.Cycle,
		"status":       status,
		"self_eval":    p.SelfEval,
		"peer_evals":   peerEvals,
		"manager_eval": p.ManagerEval,
		"summary":      p.Summary,
	}
}

func (p CreateGuild) Document() bson.M {
	calendar := p.Calendar
	if calendar == nil {
		calendar = []CalendarEntry{}
	}
	return bson.M{
		"name":        p.Name,
		"description": p.Description,
		"calendar":    calendar,
	}
}

func (p CreateMentorship) Document() bson.M {
	status := p.Status
	if status == "" {
		status = DefaultMentorshipStatus
	}
	activities := p.Activities
	if activities == nil {
		activities = []map[string]string{}
	}
	doc := bson.M{
		"mentor_id":  p.MentorID,
		"mentee_id":  p.MenteeID,
		"status":     status,
		"activities": activities,
	}
	if p.StartDate != nil && *p.StartDate != "" {
		doc["start_date"] = parseFlexibleDate(*p.StartDate)
	} else {
		doc["start_date"] = nil
	}
	return doc
}

func (p CreateResource) Document() bson.M {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return bson.M{
		"title":            p.Title,
		"url":              p.URL,
		"provider":         p.Provider,
		"tags":             tags,
		"duration_minutes": p.DurationMinutes,
	}
}

func (p CreateProject) Document() bson.M {
	designers := p.Designers
	if designers == nil {
		designers = []string{}
	}
	stages := p.Stages
	if stages == nil {
		stages = []map[string]string{}
	}
	return bson.M{
		"name":        p.Name,
		"description": p.Description,
		"manager_id":  p.ManagerID,
		"designers":   designers,
		"stages":      stages,
	}
}

func (p CreateNotification) Document() bson.M {
	sentVia := p.SentVia
	if sentVia == nil {
		sentVia = []string{}
	}
	return bson.M{
		"user_id":  p.UserID,
		"kind":     p.Kind,
		"message":  p.Message,
		"sent_via": sentVia,
	}
}
