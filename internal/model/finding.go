package model

// Status classifies the outcome of a comparison for one field of one pair.
type Status string

const (
	StatusOK       Status = "OK"
	StatusMismatch Status = "MISMATCH"
	StatusReview   Status = "REVIEW"
)

// Field names the aspect of a clause a finding is about.
type Field string

const (
	FieldMoney  Field = "money"
	FieldDate   Field = "date"
	FieldNumber Field = "number"
	FieldID     Field = "id"
	FieldEntity Field = "entity"
)

// Risk is the severity tier assigned by the ranker.
type Risk string

const (
	RiskLow    Risk = "LOW"
	RiskMedium Risk = "MEDIUM"
	RiskHigh   Risk = "HIGH"
)

// RuleFinding is a deterministic, rule-based comparison result for one field.
type RuleFinding struct {
	Field     Field  `json:"field"`
	Status    Status `json:"status"`
	Rationale string `json:"rationale"`
}

// SemanticFinding is a classifier-derived comparison result. SemanticScore is
// the classifier's confidence in [0,1], shared across all findings produced
// by one classification call.
type SemanticFinding struct {
	Field         Field   `json:"field"`
	Status        Status  `json:"status"`
	Rationale     string  `json:"rationale"`
	SemanticScore float64 `json:"semantic_score"`
}

// Finding is the canonical, post-merge finding record. RulesTriggered names
// the rule fields that fired, or ["LLM"] for classifier-derived findings.
// Risk and Confidence are assigned by the ranker.
type Finding struct {
	ClauseKey      string    `json:"clause_key"`
	Status         Status    `json:"status"`
	Field          Field     `json:"field,omitempty"`
	Confidence     float64   `json:"confidence"`
	SemanticScore  float64   `json:"semantic_score"`
	Rationale      string    `json:"rationale"`
	RulesTriggered []string  `json:"rules_triggered"`
	Contexts       []Context `json:"contexts,omitempty"`
	Risk           Risk      `json:"risk,omitempty"`
}
