package scoring

import (
	"time"

	"github.com/abhisek/satlearn/internal/skillmap"
)

// Difficulty is a question's difficulty tier. The numeric values match the
// content store's 0/1/2 encoding.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// NumDifficulties is the number of difficulty tiers.
const NumDifficulties = 3

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the three tiers.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// Harder returns the next tier up, capped at Hard.
func (d Difficulty) Harder() Difficulty {
	if d >= Hard {
		return Hard
	}
	return d + 1
}

func (d Difficulty) normalize() Difficulty {
	if !d.Valid() {
		return Medium
	}
	return d
}

// MasteryLevel is a coarse label derived from competency.
type MasteryLevel string

const (
	LevelBeginner   MasteryLevel = "beginner"
	LevelDeveloping MasteryLevel = "developing"
	LevelProficient MasteryLevel = "proficient"
	LevelAdvanced   MasteryLevel = "advanced"
	LevelMaster     MasteryLevel = "master"
)

// AnswerEvent is a single answered question reported by the session layer.
type AnswerEvent struct {
	SkillID    skillmap.SkillID
	QuestionID string
	Correct    bool
	TimeSpent  float64 // seconds
	Difficulty Difficulty
	Timestamp  time.Time
}

// AttemptRecord is one entry of a skill's recent-attempt window.
type AttemptRecord struct {
	QuestionID string     `json:"question_id"`
	Correct    bool       `json:"correct"`
	TimeSpent  float64    `json:"time_spent"`
	Difficulty Difficulty `json:"difficulty"`
	Timestamp  time.Time  `json:"timestamp"`
}

// DifficultyStats aggregates performance on one difficulty tier.
type DifficultyStats struct {
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
	AvgTime  float64 `json:"avg_time"`
}

// SkillScore is the competency model for a single skill.
type SkillScore struct {
	CompetencyScore   float64   `json:"competency_score"`
	ConfidenceLevel   float64   `json:"confidence_level"`
	LastPracticedAt   time.Time `json:"last_practiced_at"`
	LastScoreUpdateAt time.Time `json:"last_score_update_at"`

	TotalAttempts  int `json:"total_attempts"`
	CorrectCount   int `json:"correct_count"`
	IncorrectCount int `json:"incorrect_count"`

	// RecentAttempts holds the newest attempts, oldest first.
	RecentAttempts []AttemptRecord `json:"recent_attempts"`

	// RecentStreak is positive for consecutive correct answers and negative
	// for consecutive misses.
	RecentStreak  int `json:"recent_streak"`
	LongestStreak int `json:"longest_streak"`

	ImprovementRate float64 `json:"improvement_rate"`
	// TimeToMastery is the estimated number of attempts to reach the target.
	TimeToMastery int `json:"time_to_mastery"`

	DifficultyPerformance [NumDifficulties]DifficultyStats `json:"difficulty_performance"`

	AverageTimeSpent    float64 `json:"average_time_spent"`
	OptimalTimeEstimate float64 `json:"optimal_time_estimate"`

	MasteryLevel       MasteryLevel `json:"mastery_level"`
	IsStable           bool         `json:"is_stable"`
	NeedsReinforcement bool         `json:"needs_reinforcement"`
}

// Accuracy returns the lifetime accuracy ratio.
func (s *SkillScore) Accuracy() float64 {
	if s.TotalAttempts == 0 {
		return 0.0
	}
	return float64(s.CorrectCount) / float64(s.TotalAttempts)
}

// Clone returns a deep copy so callers never share the attempts window.
func (s SkillScore) Clone() SkillScore {
	out := s
	if s.RecentAttempts != nil {
		out.RecentAttempts = make([]AttemptRecord, len(s.RecentAttempts))
		copy(out.RecentAttempts, s.RecentAttempts)
	}
	return out
}
