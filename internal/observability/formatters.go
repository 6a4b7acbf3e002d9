// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/fairmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens a string for single-line display.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// PrintProfile outputs a human-readable summary of the parsed candidate profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", profile.Email))
	if profile.PrimaryField != "" {
		sb.WriteString(fmt.Sprintf("Field:  %s\n", profile.PrimaryField))
	}
	sb.WriteString("\n")

	if len(profile.SkillsGeneral) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d): %s\n",
			len(profile.SkillsGeneral), truncate(strings.Join(profile.SkillsGeneral, ", "), 40)))
	}
	if len(profile.SkillsSoft) > 0 {
		sb.WriteString(fmt.Sprintf("Soft (%d):   %s\n",
			len(profile.SkillsSoft), truncate(strings.Join(profile.SkillsSoft, ", "), 40)))
	}

	if len(profile.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		count := min(len(profile.Education), 3)
		for i := 0; i < count; i++ {
			edu := profile.Education[i]
			label := edu.Degree
			if label == "" {
				label = edu.Institution
			}
			sb.WriteString(fmt.Sprintf("  • %s", truncate(label, 40)))
			if edu.GPA != nil {
				sb.WriteString(fmt.Sprintf(" (GPA %.2f)", *edu.GPA))
			}
			sb.WriteString("\n")
		}
		if len(profile.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Education)-3))
		}
	}

	if len(profile.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(profile.Experience), 3)
		for i := 0; i < count; i++ {
			exp := profile.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", truncate(exp.Company, 30)))
			if exp.DateRange != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", exp.DateRange))
			}
			sb.WriteString("\n")
		}
		if len(profile.Experience) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-3))
		}
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the top catalog matches with score breakdowns.
func (p *Printer) PrintRecommendations(list *types.RecommendationList) {
	if list == nil || len(list.Results) == 0 {
		p.printBox("CATALOG RECOMMENDATIONS", "No matches above the cutoff.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total matches: %d\n\n", len(list.Results)))

	count := min(len(list.Results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := list.Results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, truncate(result.JobTitle, 45)))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (S %.1f / E %.1f / Ed %.1f)\n",
			result.Score, result.Breakdown.Skills, result.Breakdown.Experience, result.Breakdown.Education))
		matched := append([]string{}, result.MatchedGeneralSkills...)
		matched = append(matched, result.MatchedSoftSkills...)
		if len(matched) > 0 {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", truncate(strings.Join(matched, ", "), 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(list.Results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(list.Results)-maxItemsToShow))
	}

	p.printBox("CATALOG RECOMMENDATIONS", sb.String())
}

// PrintBoothRecommendations outputs ranked booths with their best openings.
func (p *Printer) PrintBoothRecommendations(list *types.BoothRecommendationList) {
	if list == nil || len(list.Booths) == 0 {
		p.printBox("BOOTH RECOMMENDATIONS", "No eligible booths.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Eligible booths: %d\n\n", len(list.Booths)))

	count := min(len(list.Booths), maxItemsToShow)
	for i := 0; i < count; i++ {
		booth := list.Booths[i]
		header := booth.CompanyName
		if booth.BoothNumber != "" {
			header = fmt.Sprintf("%s (booth %s)", booth.CompanyName, booth.BoothNumber)
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, truncate(header, 45)))
		sb.WriteString(fmt.Sprintf("    Best score: %.2f across %d openings\n",
			booth.HighestScore, len(booth.Openings)))
		if len(booth.Openings) > 0 {
			sb.WriteString(fmt.Sprintf("    Top: %s\n", truncate(booth.Openings[0].JobTitle, 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(list.Booths) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more booths", len(list.Booths)-maxItemsToShow))
	}

	p.printBox("BOOTH RECOMMENDATIONS", sb.String())
}
