// Package report renders learner data for the terminal.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/satlearn/internal/content"
	"github.com/abhisek/satlearn/internal/learning"
	"github.com/abhisek/satlearn/internal/scoring"
	"github.com/abhisek/satlearn/internal/skillmap"
	"github.com/abhisek/satlearn/internal/store"
	"github.com/abhisek/satlearn/internal/ui/components"
	"github.com/abhisek/satlearn/internal/ui/theme"
)

const (
	nameWidth = 36
	barWidth  = 20
)

// Stats renders the overall summary and per-domain competency bars.
func Stats(st *learning.LearnerState) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Learner "+st.LearnerID) + "\n")
	fmt.Fprintf(&b, "Overall competency  %s\n", theme.ForCompetency(st.OverallCompetency).Render(fmt.Sprintf("%.1f", st.OverallCompetency)))
	fmt.Fprintf(&b, "Questions answered  %d\n", st.QuestionsAnswered)
	fmt.Fprintf(&b, "Time practiced      %s\n", (time.Duration(st.TimeSpent) * time.Second).String())

	p := st.Profile
	if !p.RefreshedAt.IsZero() {
		fmt.Fprintf(&b, "Velocity %.1f  Retention %.1f  Consistency %.1f  (out of 10)\n",
			p.LearningVelocity, p.RetentionRate, p.ConsistencyScore)
	}

	b.WriteString(theme.Heading.Render("Domains") + "\n")
	for _, d := range skillmap.AllDomains() {
		sum, ok := st.Domains[d.ID]
		if !ok {
			continue
		}
		b.WriteString(components.NewProgressBar(d.Name, nameWidth, sum.AverageCompetency, barWidth).View() + "\n")
	}

	if len(p.PrioritySkills) > 0 {
		b.WriteString(theme.Heading.Render("Focus next") + "\n")
		for _, id := range p.PrioritySkills {
			b.WriteString("  " + skillmap.DisplayName(id) + "\n")
		}
	}
	return b.String()
}

// Skills renders a competency bar for every practiced skill, or every skill
// when all is set.
func Skills(st *learning.LearnerState, all bool) string {
	var b strings.Builder
	ids := make([]skillmap.SkillID, 0, len(st.Skills))
	for id, s := range st.Skills {
		if all || s.TotalAttempts > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return theme.Hint.Render("No skills practiced yet.") + "\n"
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		s := st.Skills[id]
		b.WriteString(components.NewProgressBar(skillmap.DisplayName(id), nameWidth, s.CompetencyScore, barWidth).View())
		fmt.Fprintf(&b, "  %-11s %3d attempts\n", s.MasteryLevel, s.TotalAttempts)
	}
	return b.String()
}

// Insights renders strengths, weaknesses and improvement areas.
func Insights(ins *learning.Insights) string {
	var b strings.Builder
	section := func(title string, list []learning.SkillInsight, withReason bool) {
		b.WriteString(theme.Heading.Render(title) + "\n")
		if len(list) == 0 {
			b.WriteString(theme.Hint.Render("  none") + "\n")
			return
		}
		for _, in := range list {
			score := theme.ForCompetency(in.Competency).Render(fmt.Sprintf("%5.1f", in.Competency))
			line := fmt.Sprintf("  %s  %s", score, components.Truncate(in.Name, nameWidth))
			if withReason && in.Reason != "" {
				line += "  " + theme.Hint.Render(in.Reason)
			}
			b.WriteString(line + "\n")
		}
	}
	section("Strengths", ins.Strengths, false)
	section("Weaknesses", ins.Weaknesses, false)
	section("Improvement areas", ins.ImprovementAreas, true)
	return b.String()
}

// History renders answer log records, newest first.
func History(records []store.AnswerRecord) string {
	if len(records) == 0 {
		return "No answers recorded.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s  %-19s  %-14s  %-30s  %-6s  %6s  %s\n",
		"Seq", "Timestamp", "Question", "Skill", "Level", "Secs", "OK")
	b.WriteString(strings.Repeat("─", 100) + "\n")
	for _, r := range records {
		ok := theme.Strong.Render("✓")
		if !r.Correct {
			ok = theme.Weak.Render("✗")
		}
		fmt.Fprintf(&b, "%-6d  %-19s  %-14s  %-30s  %-6s  %6.0f  %s\n",
			r.Sequence,
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			components.Truncate(r.QuestionID, 14),
			components.Truncate(skillmap.DisplayName(skillmap.SkillID(r.SkillID)), 30),
			scoring.Difficulty(r.Difficulty),
			r.TimeSpent,
			ok)
	}
	return b.String()
}

// Session renders a planned session.
func Session(sessionID string, qs []content.Question) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Session "+sessionID) + "\n")
	if len(qs) == 0 {
		b.WriteString(theme.Hint.Render("The question pool is empty.") + "\n")
		return b.String()
	}
	for i, q := range qs {
		name := "unmapped"
		if id, err := q.SkillID(); err == nil {
			name = skillmap.DisplayName(id)
		}
		fmt.Fprintf(&b, "%3d. %-14s  %-6s  %s\n", i+1, components.Truncate(q.ID, 14), q.Level(), name)
	}
	return b.String()
}
