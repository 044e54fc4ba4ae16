package reference

// Competency is a named axis of professional skill designers are assessed on.
type Competency struct {
	Key   string `json:"key" bson:"key"`
	Title string `json:"title" bson:"title"`
}

// CareerLevel maps competency keys to expectation summaries for one rank.
type CareerLevel struct {
	Level        string            `json:"level" bson:"level"`
	Expectations map[string]string `json:"expectations" bson:"expectations"`
}

// Static career framework. Served verbatim by /api/reference and the dashboard
// summary; there is no mutation path.
var Competencies = []Competency{
	{Key: "product_strategy", Title: "Product Strategy"},
	{Key: "craft_quality", Title: "Craft Quality"},
	{Key: "collaboration", Title: "Collaboration"},
	{Key: "impact", Title: "Impact"},
	{Key: "mentorship", Title: "Mentorship"},
}

var CareerLevels = []CareerLevel{
	{Level: "Junior", Expectations: map[string]string{
		"craft_quality": "Executes with guidance",
		"collaboration": "Communicates within team",
		"impact":        "Delivers assigned tasks",
	}},
	{Level: "Mid", Expectations: map[string]string{
		"product_strategy": "Contributes to product thinking",
		"craft_quality":    "Owns features end-to-end",
		"collaboration":    "Works cross-functionally",
		"impact":           "Improves team outcomes",
	}},
	{Level: "Senior", Expectations: map[string]string{
		"product_strategy": "Shapes problem spaces",
		"craft_quality":    "Raises quality bar",
		"collaboration":    "Aligns stakeholders",
		"impact":           "Leads complex initiatives",
		"mentorship":       "Coaches designers",
	}},
	{Level: "Staff", Expectations: map[string]string{
		"product_strategy": "Drives multi-team strategy",
		"impact":           "Org-level outcomes",
		"mentorship":       "Grows design org",
	}},
	{Level: "Principal", Expectations: map[string]string{
		"product_strategy": "Company-level strategy",
		"impact":           "Industry influence",
		"mentorship":       "Builds leaders",
	}},
}
