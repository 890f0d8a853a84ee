package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/autoware-viz/sceneconv/diagnostics"
	"github.com/autoware-viz/sceneconv/ros"
)

var statusColors = map[diagnostics.Status]*color.Color{
	diagnostics.StatusSuccess: color.New(color.FgGreen),
	diagnostics.StatusFailure: color.New(color.FgRed),
	diagnostics.StatusWarning: color.New(color.FgYellow),
	diagnostics.StatusUnknown: color.New(color.FgHiBlack),
}

func colorize(value interface{}, text string) string {
	return statusColors[diagnostics.StatusOf(value)].Sprint(text)
}

// DiagnosticsAction replays result messages through one tracker per topic and prints what
// each tracker accumulated.
func DiagnosticsAction(c *cli.Context) error {
	messages, err := readMessagesFile(c, c.String(inputFlag))
	if err != nil {
		return err
	}

	topics := c.StringSlice(topicFlag)
	if len(topics) == 0 {
		topics = lo.Uniq(lo.Map(messages, func(m ros.Message, _ int) string { return m.Topic }))
	}
	trackers := make([]*diagnostics.Tracker, 0, len(topics))
	byTopic := map[string]*diagnostics.Tracker{}
	for _, topic := range topics {
		tracker := diagnostics.NewTracker(topic)
		trackers = append(trackers, tracker)
		byTopic[topic] = tracker
	}
	for _, msg := range messages {
		if tracker, ok := byTopic[msg.Topic]; ok {
			tracker.Handle(msg.Data)
		}
	}

	for _, tracker := range trackers {
		printf(c.App.Writer, "%s", RenderTracker(tracker))
	}
	return nil
}

// RenderTracker formats a tracker's state for the terminal.
func RenderTracker(tracker *diagnostics.Tracker) string {
	state := tracker.State()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", color.New(color.Bold).Sprint(tracker.Topic()))
	if state.Error != "" {
		fmt.Fprintf(&sb, "%s\n", color.New(color.FgRed).Sprint(state.Error))
	}
	if !state.Received {
		sb.WriteString("Waiting for data...\n")
		return sb.String()
	}

	result := state.Result.Result
	verdict := "Failed"
	if result.Success {
		verdict = "Passed"
	}
	fmt.Fprintf(&sb, "Result: %s\n", colorize(result.Success, verdict))
	if result.Summary != "" {
		fmt.Fprintf(&sb, "Summary: %s\n", result.Summary)
	}
	if tracker.Topic() == diagnostics.LocalizationResultsTopic {
		writeLocalizationSummary(&sb, diagnostics.ParseLocalizationSummary(result.Summary))
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Condition", "Total", "Frame", "Current", "Info"})
	for _, cond := range state.Conditions {
		current := ""
		if cond.Current {
			current = "*"
		}
		if cond.Details == nil {
			t.AppendRow(table.Row{cond.Name, "-", "-", current, "no details reported"})
			continue
		}
		t.AppendRow(table.Row{
			cond.Name,
			colorize(cond.Details.Result.Total, cond.Details.Result.Total),
			colorize(cond.Details.Result.Frame, cond.Details.Result.Frame),
			current,
			formatInfo(cond.Details.Info),
		})
	}
	sb.WriteString(t.Render())
	return sb.String()
}

func writeLocalizationSummary(sb *strings.Builder, summary diagnostics.LocalizationSummary) {
	if conv := summary.Convergence; conv != nil {
		fmt.Fprintf(sb, "Convergence: %s %d/%d (%.2f%%)\n",
			colorize(conv.Status, conv.Status), conv.Passed, conv.Total, conv.Percentage)
	}
	if rel := summary.Reliability; rel != nil {
		fmt.Fprintf(sb, "Reliability: %s NG %d/%d average %.5f stddev %.5f\n",
			colorize(rel.Status, rel.Status), rel.NGCount, rel.TotalTests, rel.Average, rel.StdDev)
	}
	if ndt := summary.NDT; ndt != nil {
		fmt.Fprintf(sb, "NDT: %s %s\n", colorize(ndt.Status, ndt.Status), ndt.Availability)
	}
}

func formatInfo(info map[string]interface{}) string {
	if len(info) == 0 {
		return ""
	}
	keys := lo.Keys(info)
	sort.Strings(keys)
	parts := lo.Map(keys, func(k string, _ int) string { return fmt.Sprintf("%s=%v", k, info[k]) })
	return strings.Join(parts, " ")
}
