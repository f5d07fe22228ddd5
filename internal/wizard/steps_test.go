package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStepTitles(t *testing.T) {
	require.Equal(t, "Basic Info", StepTitle(StepBasicInfo))
	require.Equal(t, "Review", StepTitle(StepReview))
	require.Equal(t, "", StepTitle(-1))
	require.Equal(t, "", StepTitle(StepCount))
}

func TestStepForField(t *testing.T) {
	cases := map[string]int{
		"Name":                   StepBasicInfo,
		"Notes":                  StepBasicInfo,
		"Value":                  StepBasicInfo,
		"Currency":               StepBasicInfo,
		"Type":                   StepBasicInfo,
		"Location.Address":       StepLocation,
		"Location.PostalCode":    StepLocation,
		"Images[2].DisplayName":  StepImages,
		"Documents[0].MediaType": StepDocuments,
		"Tenants[1].Email":       StepTenants,
	}
	for field, want := range cases {
		got, ok := stepForField(field)
		require.True(t, ok, field)
		require.Equal(t, want, got, field)
	}

	_, ok := stepForField("Unknown.Field")
	require.False(t, ok)
}

func TestStepsWithErrorsSortedAndDeduplicated(t *testing.T) {
	errs := []FieldError{
		{Field: "Tenants[0].Email", Step: StepTenants},
		{Field: "Name", Step: StepBasicInfo},
		{Field: "Tenants[1].Email", Step: StepTenants},
		{Field: "Location.City", Step: StepLocation},
	}

	require.Equal(t, []int{StepBasicInfo, StepLocation, StepTenants}, StepsWithErrors(errs))
}

func TestFirstErrorStep(t *testing.T) {
	errs := []FieldError{
		{Field: "Documents[0].DisplayName", Step: StepDocuments},
		{Field: "Location.Address", Step: StepLocation},
	}

	step, ok := FirstErrorStep(errs)
	require.True(t, ok)
	require.Equal(t, StepLocation, step)

	_, ok = FirstErrorStep(nil)
	require.False(t, ok)
}
