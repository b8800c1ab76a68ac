package content

import (
	"fmt"

	"github.com/abhisek/satlearn/internal/scoring"
	"github.com/abhisek/satlearn/internal/skillmap"
)

// Question is a single item in the question pool. The engine never mutates
// questions; it only filters and selects them.
type Question struct {
	ID string `json:"id"`
	// Field is the skill id. Nil when the author only tagged a domain.
	Field      *int   `json:"field,omitempty"`
	Domain     int    `json:"domain"`
	Difficulty int    `json:"difficulty"`
	Answer     string `json:"answer"`
}

// SkillID resolves the question's skill, falling back to the domain's
// representative skill when Field is absent or out of range.
func (q Question) SkillID() (skillmap.SkillID, error) {
	if q.Field != nil {
		if id := skillmap.SkillID(*q.Field); id.Valid() {
			return id, nil
		}
	}
	id, err := skillmap.RepresentativeSkill(skillmap.DomainID(q.Domain))
	if err != nil {
		return 0, fmt.Errorf("question %q: %w", q.ID, err)
	}
	return id, nil
}

// Level returns the question's difficulty tier.
func (q Question) Level() scoring.Difficulty {
	return scoring.Difficulty(q.Difficulty)
}
