package learning

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/satlearn/internal/scoring"
	"github.com/abhisek/satlearn/internal/skillmap"
)

// SchemaVersion is the current LearnerState document version.
const SchemaVersion = 2

// Session-length preferences for a new learner.
const (
	DefaultSessionLength = 10
	MinSessionLength     = 5
	MaxSessionLength     = 20
)

// profileListSize bounds PrioritySkills and StrongSkills.
const profileListSize = 5

// DomainSummary aggregates the skills of one domain.
type DomainSummary struct {
	AverageCompetency float64                                 `json:"average_competency"`
	SkillScores       map[skillmap.SkillID]scoring.SkillScore `json:"skill_scores"`
}

// SessionPreferences holds the learner's preferred session sizes.
type SessionPreferences struct {
	Length int `json:"length"`
	Min    int `json:"min"`
	Max    int `json:"max"`
}

// LearnerProfile summarizes learning behaviour on 0-10 scales.
type LearnerProfile struct {
	LearningVelocity float64            `json:"learning_velocity"`
	RetentionRate    float64            `json:"retention_rate"`
	ConsistencyScore float64            `json:"consistency_score"`
	Session          SessionPreferences `json:"session"`
	PrioritySkills   []skillmap.SkillID `json:"priority_skills"`
	StrongSkills     []skillmap.SkillID `json:"strong_skills"`
	RefreshedAt      time.Time          `json:"refreshed_at"`
}

// LearnerState is the root aggregate persisted per learner.
type LearnerState struct {
	LearnerID         string                                  `json:"learner_id"`
	Skills            map[skillmap.SkillID]scoring.SkillScore `json:"skills"`
	Domains           map[skillmap.DomainID]DomainSummary     `json:"domains"`
	Profile           LearnerProfile                          `json:"profile"`
	OverallCompetency float64                                 `json:"overall_competency"`
	QuestionsAnswered int                                     `json:"questions_answered"`
	TimeSpent         float64                                 `json:"time_spent"` // seconds
	SchemaVersion     int                                     `json:"schema_version"`
	CreatedAt         time.Time                               `json:"created_at"`
	UpdatedAt         time.Time                               `json:"updated_at"`

	// Revision is the store's concurrency token. It lives outside the document.
	Revision int64 `json:"-"`
}

// newLearnerState creates a state with every catalogue skill at the
// neutral score.
func newLearnerState(engine *scoring.Engine, learnerID string, now time.Time) *LearnerState {
	st := &LearnerState{
		LearnerID:     learnerID,
		Skills:        make(map[skillmap.SkillID]scoring.SkillScore, skillmap.NumSkills),
		SchemaVersion: SchemaVersion,
		CreatedAt:     now,
		UpdatedAt:     now,
		Profile: LearnerProfile{
			Session: SessionPreferences{
				Length: DefaultSessionLength,
				Min:    MinSessionLength,
				Max:    MaxSessionLength,
			},
		},
	}
	for _, id := range skillmap.AllSkillIDs() {
		st.Skills[id] = engine.InitializeSkillScore(now)
	}
	st.recomputeAggregates()
	return st
}

// decodeLearnerState parses a stored document, validates it and upgrades it
// to the current schema version.
func decodeLearnerState(engine *scoring.Engine, data []byte, revision int64, now time.Time) (*LearnerState, error) {
	var st LearnerState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode learner state: %w", err)
	}
	if err := st.validate(); err != nil {
		return nil, err
	}
	st.upgrade(engine, now)
	st.Revision = revision
	return &st, nil
}

func (st *LearnerState) encode() ([]byte, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode learner state: %w", err)
	}
	return data, nil
}

// validate rejects documents carrying skills outside the catalogue.
func (st *LearnerState) validate() error {
	for id := range st.Skills {
		if !id.Valid() {
			return fmt.Errorf("validate learner state: skill %d: %w", id, skillmap.ErrUnknownSkill)
		}
	}
	if st.SchemaVersion > SchemaVersion {
		return fmt.Errorf("validate learner state: schema version %d is newer than %d", st.SchemaVersion, SchemaVersion)
	}
	return nil
}

// upgrade fills in skills and defaults missing from older documents.
func (st *LearnerState) upgrade(engine *scoring.Engine, now time.Time) {
	if st.Skills == nil {
		st.Skills = make(map[skillmap.SkillID]scoring.SkillScore, skillmap.NumSkills)
	}
	added := false
	for _, id := range skillmap.AllSkillIDs() {
		if _, ok := st.Skills[id]; !ok {
			st.Skills[id] = engine.InitializeSkillScore(now)
			added = true
		}
	}

	p := &st.Profile.Session
	if p.Length == 0 {
		p.Length = DefaultSessionLength
	}
	if p.Min == 0 {
		p.Min = MinSessionLength
	}
	if p.Max == 0 {
		p.Max = MaxSessionLength
	}
	if st.CreatedAt.IsZero() {
		st.CreatedAt = now
	}

	if added || st.SchemaVersion < SchemaVersion || st.Domains == nil {
		st.recomputeAggregates()
	}
	st.SchemaVersion = SchemaVersion
}

// recomputeAggregates refreshes the overall mean and the domain summaries.
func (st *LearnerState) recomputeAggregates() {
	if len(st.Skills) == 0 {
		st.OverallCompetency = 0
		st.Domains = map[skillmap.DomainID]DomainSummary{}
		return
	}

	total := 0.0
	domains := make(map[skillmap.DomainID]DomainSummary, skillmap.NumDomains)
	for id, s := range st.Skills {
		total += s.CompetencyScore

		did, err := skillmap.DomainOf(id)
		if err != nil {
			continue
		}
		sum, ok := domains[did]
		if !ok {
			sum.SkillScores = make(map[skillmap.SkillID]scoring.SkillScore)
		}
		sum.SkillScores[id] = s
		domains[did] = sum
	}
	st.OverallCompetency = total / float64(len(st.Skills))

	for did, sum := range domains {
		dt := 0.0
		for _, s := range sum.SkillScores {
			dt += s.CompetencyScore
		}
		sum.AverageCompetency = dt / float64(len(sum.SkillScores))
		domains[did] = sum
	}
	st.Domains = domains
}

// practiced returns the ids of skills with at least one attempt.
func (st *LearnerState) practiced() []skillmap.SkillID {
	var ids []skillmap.SkillID
	for id, s := range st.Skills {
		if s.TotalAttempts > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
