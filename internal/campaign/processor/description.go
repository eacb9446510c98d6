package processor

import (
	"fmt"
	"strings"
)

const defaultTaskTitle = "New Campaign"

// taskTitle is the campaign title embedded in the task name.
func taskTitle(category string) string {
	if category == "" {
		return defaultTaskTitle
	}
	return category + " Campaign"
}

func buildTaskName(draft CampaignDraft) string {
	return fmt.Sprintf("[%s] %s", draft.Category, taskTitle(draft.Category))
}

func buildTaskDescription(draft CampaignDraft) string {
	var b strings.Builder
	b.WriteString("# Campaign Details\n\n")

	b.WriteString("## Product Information\n")
	fmt.Fprintf(&b, "- **Category:** %s\n\n", draft.Category)

	b.WriteString("## Campaign Objectives\n")
	fmt.Fprintf(&b, "- **Target Audience:** %s\n", draft.TargetAudience)
	fmt.Fprintf(&b, "- **Budget:** $%s\n", draft.Budget)
	fmt.Fprintf(&b, "- **Objective:** %s\n\n", draft.Objective)

	b.WriteString("## Product Images\n")
	sections := make([]string, 0, len(draft.Images))
	for i, img := range draft.Images {
		sections = append(sections, fmt.Sprintf("### Image %d\n- **URL:** %s\n- **Description:** %s",
			i+1, img.URL, img.Description))
	}
	b.WriteString(strings.Join(sections, "\n\n"))

	return b.String()
}
