package growth

// Create payloads for the growth-platform entities. Each maps to a Mongo
// collection named after the lowercased entity (designer, goal,
// skillassessment, review, guild, mentorship, trainingresource, project,
// notification). Fields referencing other entities (designer_id, manager_id,
// mentor_id, ...) are free-form strings; existence is never checked.

type CreateDesigner struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required"`
	ManagerID    *string  `json:"manager_id"`
	CurrentLevel string   `json:"current_level"`
	Guilds       []string `json:"guilds"`
}

type CreateGoal struct {
	DesignerID    string  `json:"designer_id" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	Description   *string `json:"description"`
	CompetencyKey *string `json:"competency_key"`
	// ISO date; kept as the raw string when it fails to parse
	TargetDate *string `json:"target_date"`
	Status     string  `json:"status"`
	Progress   *int    `json:"progress" binding:"omitempty,min=0,max=100"`
}

type CreateAssessment struct {
	DesignerID string `json:"designer_id" binding:"required"`
	// e.g. "2025-H1"
	Cycle string `json:"cycle" binding:"required"`
	// competency key -> rating; values are coerced and clamped to 1..4
	Ratings map[string]interface{} `json:"ratings" binding:"required"`
	Notes   *string                `json:"notes"`
}

type CreateReview struct {
	DesignerID  string           `json:"designer_id" binding:"required"`
	Cycle       string           `json:"cycle" binding:"required"`
	Status      string           `json:"status"`
	SelfEval    map[string]int   `json:"self_eval"`
	PeerEvals   []map[string]int `json:"peer_evals"`
	ManagerEval map[string]int   `json:"manager_eval"`
	Summary     *string          `json:"summary"`
}

type CalendarEntry struct {
	Date  string `json:"date"`
	Title string `json:"title"`
}

type CreateGuild struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	Calendar    []CalendarEntry `json:"calendar"`
}

type CreateMentorship struct {
	MentorID   string              `json:"mentor_id" binding:"required"`
	MenteeID   string              `json:"mentee_id" binding:"required"`
	StartDate  *string             `json:"start_date"`
	Status     string              `json:"status"`
	Activities []map[string]string `json:"activities"`
}

type CreateResource struct {
	Title           string   `json:"title" binding:"required"`
	URL             string   `json:"url" binding:"required"`
	Provider        *string  `json:"provider"`
	Tags            []string `json:"tags"`
	DurationMinutes *int     `json:"duration_minutes"`
}

type CreateProject struct {
	Name        string              `json:"name" binding:"required"`
	Description *string             `json:"description"`
	ManagerID   *string             `json:"manager_id"`
	Designers   []string            `json:"designers"`
	Stages      []map[string]string `json:"stages"`
}

type CreateNotification struct {
	UserID string `json:"user_id" binding:"required"`
	// review_reminder | goal_due | guild_event
	Kind    string   `json:"kind" binding:"required"`
	Message string   `json:"message" binding:"required"`
	SentVia []string `json:"sent_via"`
}
