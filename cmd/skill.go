package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/satlearn/internal/skillmap"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill catalogue",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by section or domain)",
	RunE: func(cmd *cobra.Command, args []string) error {
		section, _ := cmd.Flags().GetString("section")
		domain, _ := cmd.Flags().GetInt("domain")

		var skills []skillmap.Skill

		switch {
		case section != "" && domain >= 0:
			return fmt.Errorf("use --section or --domain, not both")
		case section != "":
			skills = skillmap.BySection(skillmap.Section(section))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for section %q", section)
			}
		case domain >= 0:
			skills = skillmap.ByDomain(skillmap.DomainID(domain))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for domain %d", domain)
			}
		default:
			skills = skillmap.AllSkills()
		}

		out := cmd.OutOrStdout()
		// Header.
		fmt.Fprintf(out, "%3s  %-30s  %-40s  %s\n", "ID", "Key", "Name", "Domain")
		fmt.Fprintln(out, strings.Repeat("─", 110))

		for _, s := range skills {
			name := s.Name
			if len(name) > 40 {
				name = name[:37] + "..."
			}
			d, _ := skillmap.GetDomain(s.Domain)
			fmt.Fprintf(out, "%3d  %-30s  %-40s  %s\n", s.ID, s.Key, name, d.Name)
		}

		fmt.Fprintf(out, "\n%d skills\n", len(skills))
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("section", "", "Filter by section (reading-and-writing or math)")
	skillListCmd.Flags().Int("domain", -1, "Filter by domain id (0-7)")

	skillCmd.AddCommand(skillListCmd)
}
