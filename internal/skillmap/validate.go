package skillmap

import (
	"fmt"
	"strings"
)

// validateCatalogue performs structural checks on the seed data.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalogue(skills []Skill, domains []Domain) error {
	var errs []string

	if len(skills) != NumSkills {
		errs = append(errs, fmt.Sprintf("expected %d skills, got %d", NumSkills, len(skills)))
	}
	if len(domains) != NumDomains {
		errs = append(errs, fmt.Sprintf("expected %d domains, got %d", NumDomains, len(domains)))
	}

	seenID := make(map[SkillID]bool, len(skills))
	seenKey := make(map[string]bool, len(skills))
	populated := make(map[DomainID]bool, len(domains))
	for _, s := range skills {
		if !s.ID.Valid() {
			errs = append(errs, fmt.Sprintf("skill id %d out of range", s.ID))
			continue
		}
		if seenID[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill id: %d", s.ID))
		}
		seenID[s.ID] = true
		if s.Key == "" {
			errs = append(errs, fmt.Sprintf("skill %d has empty key", s.ID))
		} else if seenKey[s.Key] {
			errs = append(errs, fmt.Sprintf("duplicate skill key: %q", s.Key))
		}
		seenKey[s.Key] = true
		if !s.Domain.Valid() {
			errs = append(errs, fmt.Sprintf("skill %d references nonexistent domain %d", s.ID, s.Domain))
		}
		populated[s.Domain] = true
	}

	seenDomain := make(map[DomainID]bool, len(domains))
	for _, d := range domains {
		if !d.ID.Valid() {
			errs = append(errs, fmt.Sprintf("domain id %d out of range", d.ID))
			continue
		}
		if seenDomain[d.ID] {
			errs = append(errs, fmt.Sprintf("duplicate domain id: %d", d.ID))
		}
		seenDomain[d.ID] = true
		if !populated[d.ID] {
			errs = append(errs, fmt.Sprintf("domain %q has no skills", d.Name))
		}
		rep := d.Representative
		if !rep.Valid() || !seenID[rep] {
			errs = append(errs, fmt.Sprintf("domain %q representative %d is not a skill", d.Name, rep))
			continue
		}
		for _, s := range skills {
			if s.ID == rep && s.Domain != d.ID {
				errs = append(errs, fmt.Sprintf("domain %q representative %d belongs to domain %d", d.Name, rep, s.Domain))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill catalogue validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
