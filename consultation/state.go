package consultation

import (
	"errors"
	"strings"
	"sync"
	"time"
)

// Phase is the explicit state of a consultation. Each provider call is a
// transition triggered by a user request and resolved by its completion.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseAnalyzing    Phase = "analyzing"
	PhaseAnalyzed     Phase = "analyzed"
	PhaseRecommending Phase = "recommending"
	PhaseRecommended  Phase = "recommended"
	PhaseFailed       Phase = "failed"
)

// Stage identifies which of the two provider calls failed.
type Stage string

const (
	StageAnalysis Stage = "analysis"
	StageRemedies Stage = "remedies"
)

var (
	// ErrStageInFlight is returned when a stage is re-triggered while a
	// provider call is still pending. In-flight calls are never cancelled by
	// new submissions; the new submission is rejected instead.
	ErrStageInFlight = errors.New("a request is already in progress for this consultation")

	// ErrAnalysisRequired is returned when a remedy request arrives without a
	// completed, non-empty analysis and its original symptom text.
	ErrAnalysisRequired = errors.New("symptom analysis must complete before requesting remedies")

	// ErrEmptySymptoms is returned when a symptom submission is blank.
	ErrEmptySymptoms = errors.New("symptoms cannot be empty")

	// ErrEmptyLocation is returned when a remedy submission has no location.
	ErrEmptyLocation = errors.New("location cannot be empty")
)

// Consultation is one user's transient session state. Nothing here survives a
// process restart. All transition methods are safe for concurrent use.
type Consultation struct {
	mu sync.Mutex

	id          string
	phase       Phase
	symptoms    string
	location    string
	analysis    *Analysis
	advice      *RemedyAdvice
	failedStage Stage
	createdAt   time.Time
	touchedAt   time.Time
}

// New creates an idle consultation with the given identifier.
func New(id string) *Consultation {
	now := time.Now()
	return &Consultation{
		id:        id,
		phase:     PhaseIdle,
		createdAt: now,
		touchedAt: now,
	}
}

// ID returns the consultation identifier.
func (c *Consultation) ID() string {
	return c.id
}

// Phase returns the current phase.
func (c *Consultation) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Symptoms returns the symptom text of the current flow.
func (c *Consultation) Symptoms() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.symptoms
}

// Analysis returns the analysis result, or nil when none is present.
func (c *Consultation) Analysis() *Analysis {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.analysis
}

// Advice returns the remedy result, or nil when none is present.
func (c *Consultation) Advice() *RemedyAdvice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.advice
}

// FailedStage returns which stage failed, or "" when the consultation has not
// failed.
func (c *Consultation) FailedStage() Stage {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseFailed {
		return ""
	}
	return c.failedStage
}

// TouchedAt returns the time of the last transition, used for TTL sweeping.
func (c *Consultation) TouchedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touchedAt
}

// busy reports whether a provider call is pending. Caller must hold mu.
func (c *Consultation) busy() bool {
	return c.phase == PhaseAnalyzing || c.phase == PhaseRecommending
}

// BeginAnalysis starts a new symptom flow. Any prior analysis and remedy
// result are discarded here, before the provider call resolves, so stale
// remedies are never shown against new symptoms.
func (c *Consultation) BeginAnalysis(symptoms string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy() {
		return ErrStageInFlight
	}
	if strings.TrimSpace(symptoms) == "" {
		return ErrEmptySymptoms
	}

	c.phase = PhaseAnalyzing
	c.symptoms = symptoms
	c.location = ""
	c.analysis = nil
	c.advice = nil
	c.failedStage = ""
	c.touchedAt = time.Now()
	return nil
}

// CompleteAnalysis records a successful analysis result.
func (c *Consultation) CompleteAnalysis(a *Analysis) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.phase = PhaseAnalyzed
	c.analysis = a
	c.touchedAt = time.Now()
}

// FailAnalysis records an analysis failure. The analysis result stays unset so
// the remedy stage remains gated.
func (c *Consultation) FailAnalysis() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.phase = PhaseFailed
	c.failedStage = StageAnalysis
	c.analysis = nil
	c.touchedAt = time.Now()
}

// BeginRecommendation starts the remedy stage. It is rejected until a
// non-empty analysis result and the original symptom text are present. On
// acceptance it returns the remedy request with possibleConditions joined in
// the analysis result's original order.
func (c *Consultation) BeginRecommendation(location string) (RemedyRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy() {
		return RemedyRequest{}, ErrStageInFlight
	}
	if strings.TrimSpace(location) == "" {
		return RemedyRequest{}, ErrEmptyLocation
	}
	if c.analysis == nil || len(c.analysis.Conditions) == 0 || strings.TrimSpace(c.symptoms) == "" {
		return RemedyRequest{}, ErrAnalysisRequired
	}

	c.phase = PhaseRecommending
	c.location = location
	c.advice = nil
	c.touchedAt = time.Now()

	return RemedyRequest{
		Symptoms:           c.symptoms,
		Location:           location,
		PossibleConditions: c.analysis.PossibleConditions(),
	}, nil
}

// CompleteRecommendation records a successful remedy result.
func (c *Consultation) CompleteRecommendation(advice *RemedyAdvice) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.phase = PhaseRecommended
	c.advice = advice
	c.touchedAt = time.Now()
}

// FailRecommendation records a remedy failure. The analysis result is kept
// intact, so the user can retry this stage without re-running the analysis.
func (c *Consultation) FailRecommendation() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.phase = PhaseFailed
	c.failedStage = StageRemedies
	c.advice = nil
	c.touchedAt = time.Now()
}

// Snapshot is a read-only view of a consultation for API responses.
type Snapshot struct {
	ID          string               `json:"id"`
	Phase       Phase                `json:"phase"`
	Symptoms    string               `json:"symptoms,omitempty"`
	Location    string               `json:"location,omitempty"`
	Analysis    *Analysis            `json:"analysis,omitempty"`
	Remedies    []DisplayRemedy      `json:"remedies,omitempty"`
	Ingredients []OptionalIngredient `json:"optionalIngredients,omitempty"`
	FailedStage Stage                `json:"failedStage,omitempty"`
}

// Snapshot returns a consistent view of the consultation. Remedies are in
// display order; the underlying advice keeps the provider order.
func (c *Consultation) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		ID:       c.id,
		Phase:    c.phase,
		Symptoms: c.symptoms,
		Location: c.location,
		Analysis: c.analysis,
	}
	if c.phase == PhaseFailed {
		snap.FailedStage = c.failedStage
	}
	if c.advice != nil {
		snap.Remedies = DisplayOrder(c.advice.Remedies)
		snap.Ingredients = c.advice.OptionalIngredients
	}
	return snap
}
