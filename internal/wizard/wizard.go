package wizard

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/neluchetraru/prop-track/internal/dtos"
)

// ErrSubmitInProgress is returned when Submit is called while a previous
// submit is still pending; the UI disables re-submission but the guard
// lives here so the invariant does not depend on the UI.
var ErrSubmitInProgress = errors.New("submit already in progress")

// PropertyAPI is what the wizard needs from the network layer. The
// concrete implementation is client.Client.
type PropertyAPI interface {
	CreateProperty(ctx context.Context, req dtos.CreatePropertyRequest) (*dtos.PropertyDTO, error)
	UpdateProperty(ctx context.Context, id uuid.UUID, req dtos.UpdatePropertyRequest) (*dtos.PropertyDTO, error)
	InvalidateProperties()
}

// Wizard owns the draft, the current step and the per-step error map. It
// is confined to the UI goroutine; no locking.
type Wizard struct {
	api PropertyAPI

	draft      Draft
	editID     *uuid.UUID
	current    int
	stepErrors map[int][]FieldError
	submitting bool
}

// SubmitResult reports one of two outcomes: validation failed (ErrorSteps
// lists the offending steps, nothing was sent) or the write was confirmed
// (Property echoes the stored aggregate).
type SubmitResult struct {
	Property   *dtos.PropertyDTO
	ErrorSteps []int
}

func New(api PropertyAPI) *Wizard {
	return &Wizard{
		api:   api,
		draft: NewDraft(),
	}
}

// NewForEdit starts the wizard over an existing property's draft; Submit
// then issues a scalar-only update instead of a create.
func NewForEdit(api PropertyAPI, id uuid.UUID, draft Draft) *Wizard {
	return &Wizard{
		api:    api,
		draft:  draft,
		editID: &id,
	}
}

/* ---------- navigation ---------- */

func (w *Wizard) CurrentStep() int { return w.current }

// GoTo jumps to any step. Navigation is never gated on validation; users
// may move through the form in any order before submitting.
func (w *Wizard) GoTo(step int) {
	if step < 0 || step >= StepCount {
		return
	}
	w.current = step
}

func (w *Wizard) Next() { w.GoTo(w.current + 1) }
func (w *Wizard) Back() { w.GoTo(w.current - 1) }

/* ---------- draft edits, one setter per field group ---------- */

func (w *Wizard) Draft() Draft { return w.draft }

func (w *Wizard) SetBasicInfo(name, propertyType, currency string, value *float64, notes string) {
	w.draft.Name = name
	w.draft.Type = propertyType
	w.draft.Currency = currency
	w.draft.Value = value
	w.draft.Notes = notes
}

func (w *Wizard) SetLocation(loc LocationDraft) {
	w.draft.Location = loc
}

func (w *Wizard) SetImages(images []ImageDraft) {
	w.draft.Images = images
}

func (w *Wizard) SetDocuments(documents []DocumentDraft) {
	w.draft.Documents = documents
}

func (w *Wizard) SetTenants(tenants []TenantDraft) {
	w.draft.Tenants = tenants
}

func (w *Wizard) AddTenant(t TenantDraft) {
	w.draft.Tenants = append(w.draft.Tenants, t)
}

func (w *Wizard) RemoveTenant(i int) {
	if i < 0 || i >= len(w.draft.Tenants) {
		return
	}
	w.draft.Tenants = append(w.draft.Tenants[:i], w.draft.Tenants[i+1:]...)
}

/* ---------- errors ---------- */

func (w *Wizard) ErrorsForStep(step int) []FieldError { return w.stepErrors[step] }

func (w *Wizard) StepsWithErrors() []int {
	var all []FieldError
	for _, errs := range w.stepErrors {
		all = append(all, errs...)
	}
	return StepsWithErrors(all)
}

func (w *Wizard) Submitting() bool { return w.submitting }

/* ---------- submit ---------- */

// Submit validates the whole draft. On failure it records errors per step
// and returns the offending steps without moving the current step; the
// caller decides whether to navigate to the first one. On success it sends
// the aggregate, then clears the draft and invalidates the cached property
// list. A network failure leaves the draft intact so the user can retry
// without re-entering anything.
func (w *Wizard) Submit(ctx context.Context) (SubmitResult, error) {
	if w.submitting {
		return SubmitResult{}, ErrSubmitInProgress
	}

	errs := ValidateDraft(&w.draft)
	if len(errs) > 0 {
		byStep := make(map[int][]FieldError)
		for _, fe := range errs {
			byStep[fe.Step] = append(byStep[fe.Step], fe)
		}
		w.stepErrors = byStep
		return SubmitResult{ErrorSteps: StepsWithErrors(errs)}, nil
	}
	w.stepErrors = nil

	w.submitting = true
	defer func() { w.submitting = false }()

	var (
		created *dtos.PropertyDTO
		err     error
	)
	if w.editID != nil {
		created, err = w.api.UpdateProperty(ctx, *w.editID, BuildUpdateRequest(w.draft))
	} else {
		created, err = w.api.CreateProperty(ctx, BuildCreateRequest(w.draft))
	}
	if err != nil {
		return SubmitResult{}, err
	}

	w.api.InvalidateProperties()
	w.draft = NewDraft()
	w.current = StepBasicInfo

	return SubmitResult{Property: created}, nil
}
