package skillmap

import "fmt"

// SkillID identifies a learnable skill. Valid ids are 0..NumSkills-1.
type SkillID int

// DomainID identifies a coarse content domain. Valid ids are 0..NumDomains-1.
type DomainID int

const (
	// NumSkills is the size of the skill catalogue.
	NumSkills = 47

	// NumDomains is the number of content domains.
	NumDomains = 8
)

// Section is one of the two halves of the test.
type Section string

const (
	SectionReadingWriting Section = "reading-and-writing"
	SectionMath           Section = "math"
)

// SectionDisplayName returns a human-readable name for a section.
func SectionDisplayName(s Section) string {
	switch s {
	case SectionReadingWriting:
		return "Reading & Writing"
	case SectionMath:
		return "Math"
	default:
		return string(s)
	}
}

// Domain groups related skills for reporting and fallback mapping.
type Domain struct {
	ID      DomainID
	Name    string
	Section Section

	// Representative is the skill used when a question carries only a domain.
	Representative SkillID
}

// Skill is a single entry in the catalogue.
type Skill struct {
	ID     SkillID
	Key    string
	Name   string
	Domain DomainID
}

func (s Skill) String() string {
	return fmt.Sprintf("%d:%s", s.ID, s.Key)
}

// Valid reports whether id is inside the catalogue's range.
func (id SkillID) Valid() bool {
	return id >= 0 && int(id) < NumSkills
}

// Valid reports whether id is inside the domain range.
func (id DomainID) Valid() bool {
	return id >= 0 && int(id) < NumDomains
}
