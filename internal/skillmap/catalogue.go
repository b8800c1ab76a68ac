package skillmap

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSkill is returned for ids outside the catalogue.
var ErrUnknownSkill = errors.New("unknown skill")

// ErrUnknownDomain is returned for domain ids outside the catalogue.
var ErrUnknownDomain = errors.New("unknown domain")

// catalogue holds the skill set with precomputed indices.
type catalogue struct {
	skills   []Skill
	domains  []Domain
	byKey    map[string]SkillID
	byDomain map[DomainID][]Skill
}

// c is the package-level catalogue, built once in init.
var c *catalogue

func init() {
	if err := validateCatalogue(seedSkills, seedDomains); err != nil {
		panic(err)
	}
	c = buildCatalogue(seedSkills, seedDomains)
}

func buildCatalogue(skills []Skill, domains []Domain) *catalogue {
	cat := &catalogue{
		skills:   make([]Skill, len(skills)),
		domains:  make([]Domain, len(domains)),
		byKey:    make(map[string]SkillID, len(skills)),
		byDomain: make(map[DomainID][]Skill, len(domains)),
	}
	for _, s := range skills {
		cat.skills[s.ID] = s
		cat.byKey[s.Key] = s.ID
		cat.byDomain[s.Domain] = append(cat.byDomain[s.Domain], s)
	}
	for _, d := range domains {
		cat.domains[d.ID] = d
	}
	for id := range cat.byDomain {
		group := cat.byDomain[id]
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })
	}
	return cat
}

// AllSkills returns every skill ordered by id.
func AllSkills() []Skill {
	out := make([]Skill, len(c.skills))
	copy(out, c.skills)
	return out
}

// AllSkillIDs returns every skill id in ascending order.
func AllSkillIDs() []SkillID {
	ids := make([]SkillID, len(c.skills))
	for i, s := range c.skills {
		ids[i] = s.ID
	}
	return ids
}

// AllDomains returns every domain ordered by id.
func AllDomains() []Domain {
	out := make([]Domain, len(c.domains))
	copy(out, c.domains)
	return out
}

// GetSkill returns the skill with the given id.
func GetSkill(id SkillID) (Skill, error) {
	if !id.Valid() {
		return Skill{}, fmt.Errorf("skill %d: %w", id, ErrUnknownSkill)
	}
	return c.skills[id], nil
}

// GetDomain returns the domain with the given id.
func GetDomain(id DomainID) (Domain, error) {
	if !id.Valid() {
		return Domain{}, fmt.Errorf("domain %d: %w", id, ErrUnknownDomain)
	}
	return c.domains[id], nil
}

// ByKey resolves a skill from its stable string key.
func ByKey(key string) (Skill, error) {
	id, ok := c.byKey[key]
	if !ok {
		return Skill{}, fmt.Errorf("skill %q: %w", key, ErrUnknownSkill)
	}
	return c.skills[id], nil
}

// ByDomain returns the skills of a domain ordered by id.
func ByDomain(id DomainID) []Skill {
	group := c.byDomain[id]
	out := make([]Skill, len(group))
	copy(out, group)
	return out
}

// BySection returns the skills of a test section ordered by id.
func BySection(s Section) []Skill {
	var out []Skill
	for _, sk := range c.skills {
		if c.domains[sk.Domain].Section == s {
			out = append(out, sk)
		}
	}
	return out
}

// DomainOf returns the domain a skill belongs to.
func DomainOf(id SkillID) (DomainID, error) {
	sk, err := GetSkill(id)
	if err != nil {
		return 0, err
	}
	return sk.Domain, nil
}

// RepresentativeSkill is the fallback skill for questions that carry only a
// domain id.
func RepresentativeSkill(id DomainID) (SkillID, error) {
	d, err := GetDomain(id)
	if err != nil {
		return 0, err
	}
	return d.Representative, nil
}

// DisplayName returns the skill's name, or its numeric id when unknown.
func DisplayName(id SkillID) string {
	sk, err := GetSkill(id)
	if err != nil {
		return fmt.Sprintf("skill %d", id)
	}
	return sk.Name
}
