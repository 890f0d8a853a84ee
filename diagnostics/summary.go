package diagnostics

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	summaryPrefix     = regexp.MustCompile(`^(Failed:|Passed:)`)
	conditionItem     = regexp.MustCompile(`([^,]+?)\s*\([^)]+\)`)
	conditionDetail   = regexp.MustCompile(`\s*\([^)]+\)$`)
	convergenceRe     = regexp.MustCompile(`Convergence \(([^)]+)\): (\d+) / (\d+) -> ([\d.]+)%`)
	reliabilityRe     = regexp.MustCompile(`Reliability \(([^)]+)\): NVTL Sequential NG Count: (\d+) \(Total Test: (\d+), Average: ([\d.]+), StdDev: ([\d.]+)\)`)
	ndtAvailabilityRe = regexp.MustCompile(`NDT Availability \(([^)]+)\): (.+)`)
)

// ConditionNames returns the condition names of a summary such as
// "Passed:Diag (Success), Planning Factor (Fail)", in order.
func ConditionNames(summary string) []string {
	text := summaryPrefix.ReplaceAllString(summary, "")
	matches := conditionItem.FindAllString(text, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSpace(conditionDetail.ReplaceAllString(m, "")))
	}
	return names
}

// ConvergenceSummary is "Convergence (<status>): <passed> / <total> -> <percentage>%".
type ConvergenceSummary struct {
	Status     string
	Passed     int
	Total      int
	Percentage float64
}

// ReliabilitySummary is the NVTL reliability line of a localization summary.
type ReliabilitySummary struct {
	Status     string
	NGCount    int
	TotalTests int
	Average    float64
	StdDev     float64
}

// NDTSummary is "NDT Availability (<status>): <availability>".
type NDTSummary struct {
	Status       string
	Availability string
}

// LocalizationSummary holds whichever figures a localization summary carries.
type LocalizationSummary struct {
	Convergence *ConvergenceSummary
	Reliability *ReliabilitySummary
	NDT         *NDTSummary
}

// ParseLocalizationSummary extracts the convergence, reliability and NDT availability figures
// from a localization result summary. Missing figures are left nil.
func ParseLocalizationSummary(summary string) LocalizationSummary {
	var out LocalizationSummary
	if m := convergenceRe.FindStringSubmatch(summary); m != nil {
		out.Convergence = &ConvergenceSummary{
			Status:     m[1],
			Passed:     atoi(m[2]),
			Total:      atoi(m[3]),
			Percentage: atof(m[4]),
		}
	}
	if m := reliabilityRe.FindStringSubmatch(summary); m != nil {
		out.Reliability = &ReliabilitySummary{
			Status:     m[1],
			NGCount:    atoi(m[2]),
			TotalTests: atoi(m[3]),
			Average:    atof(m[4]),
			StdDev:     atof(m[5]),
		}
	}
	if m := ndtAvailabilityRe.FindStringSubmatch(summary); m != nil {
		out.NDT = &NDTSummary{Status: m[1], Availability: m[2]}
	}
	return out
}

func atoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func atof(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
