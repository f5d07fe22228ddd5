package wizard

import "sort"

// The wizard's six steps, in navigation order. Review owns no fields.
const (
	StepBasicInfo = iota
	StepLocation
	StepImages
	StepDocuments
	StepTenants
	StepReview

	StepCount
)

var stepTitles = [StepCount]string{
	"Basic Info",
	"Location",
	"Images",
	"Documents",
	"Tenants",
	"Review",
}

func StepTitle(step int) string {
	if step < 0 || step >= StepCount {
		return ""
	}
	return stepTitles[step]
}

// stepForField maps a draft field path (e.g. "Location.Address",
// "Tenants[0].Email") to the step that owns it. Every field belongs to
// exactly one step.
func stepForField(field string) (int, bool) {
	root := field
	for i := 0; i < len(field); i++ {
		if field[i] == '.' || field[i] == '[' {
			root = field[:i]
			break
		}
	}

	switch root {
	case "Name", "Notes", "Value", "Currency", "Type":
		return StepBasicInfo, true
	case "Location":
		return StepLocation, true
	case "Images":
		return StepImages, true
	case "Documents":
		return StepDocuments, true
	case "Tenants":
		return StepTenants, true
	default:
		return 0, false
	}
}

// StepsWithErrors returns the sorted, de-duplicated step indexes that own
// at least one failed field.
func StepsWithErrors(errs []FieldError) []int {
	seen := map[int]bool{}
	var out []int
	for _, fe := range errs {
		if !seen[fe.Step] {
			seen[fe.Step] = true
			out = append(out, fe.Step)
		}
	}
	sort.Ints(out)
	return out
}

// FirstErrorStep returns the lowest step index with an error, so failures
// resolve front-to-back in the wizard's natural order.
func FirstErrorStep(errs []FieldError) (int, bool) {
	steps := StepsWithErrors(errs)
	if len(steps) == 0 {
		return 0, false
	}
	return steps[0], true
}
