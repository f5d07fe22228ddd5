package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/neluchetraru/prop-track/internal/dtos"
	"github.com/neluchetraru/prop-track/internal/middleware"
	"github.com/neluchetraru/prop-track/internal/services"
	"github.com/neluchetraru/prop-track/internal/utils"
)

type PropertyController struct {
	propertyService *services.PropertyService
	validate        *validator.Validate
}

func NewPropertyController(ps *services.PropertyService) *PropertyController {
	return &PropertyController{
		propertyService: ps,
		validate:        validator.New(),
	}
}

// currentUserID pulls the authenticated user's id out of the request
// context. A missing or unparsable id means the auth middleware did not
// run, or the session provider handed us garbage; either way it is a 401.
func currentUserID(r *http.Request) (uuid.UUID, bool) {
	ctxUserID := r.Context().Value(middleware.ContextKeyUserID)
	if ctxUserID == nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(ctxUserID.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// formatValidationErrors converts validator errors into the structured
// details the envelope carries.
func formatValidationErrors(errs validator.ValidationErrors) []dtos.ValidationErrorDetail {
	out := make([]dtos.ValidationErrorDetail, 0, len(errs))
	for _, fe := range errs {
		out = append(out, dtos.ValidationErrorDetail{
			Field:   fe.Namespace(),
			Message: fe.Error(),
			Code:    fe.Tag(),
		})
	}
	return out
}

// ----------------------------------------------------------------
// GET /properties
// ----------------------------------------------------------------
func (c *PropertyController) ListPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := currentUserID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No userID in context", nil)
		return
	}

	list, err := c.propertyService.List(ctx, ownerID)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list properties")
		utils.RespondError(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to fetch properties", nil, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, dtos.NewPropertyDTOs(list))
}

// ----------------------------------------------------------------
// GET /properties/{id}
// ----------------------------------------------------------------
func (c *PropertyController) GetPropertyHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := currentUserID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No userID in context", nil)
		return
	}

	// An unparsable id gets the same answer as an unknown one.
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found", nil)
		return
	}

	p, err := c.propertyService.Get(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found", nil)
			return
		}
		utils.Logger.WithError(err).Error("Failed to fetch property")
		utils.RespondError(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to fetch property", nil, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, dtos.NewPropertyDTO(p))
}

// ----------------------------------------------------------------
// POST /properties
// ----------------------------------------------------------------
func (c *PropertyController) CreatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := currentUserID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No userID in context", nil)
		return
	}

	var req dtos.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	req.Normalize()

	if err := c.validate.StructCtx(ctx, req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			utils.RespondError(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", formatValidationErrors(validationErrors))
		} else {
			utils.RespondError(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request data", nil, err)
		}
		return
	}

	p, err := c.propertyService.Create(ctx, ownerID, req)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to create property")
		utils.RespondError(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to create property", nil, err)
		return
	}
	utils.RespondSuccess(w, http.StatusCreated, dtos.NewPropertyDTO(p))
}

// ----------------------------------------------------------------
// PUT /properties/{id}
// ----------------------------------------------------------------
func (c *PropertyController) UpdatePropertyHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := currentUserID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No userID in context", nil)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found", nil)
		return
	}

	var req dtos.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return
	}
	req.Normalize()

	if err := c.validate.StructCtx(ctx, req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			utils.RespondError(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", formatValidationErrors(validationErrors))
		} else {
			utils.RespondError(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request data", nil, err)
		}
		return
	}

	p, err := c.propertyService.Update(ctx, id, ownerID, req)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found", nil)
			return
		}
		utils.Logger.WithError(err).Error("Failed to update property")
		utils.RespondError(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to update property", nil, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, dtos.NewPropertyDTO(p))
}

// ----------------------------------------------------------------
// DELETE /properties/{id}
// ----------------------------------------------------------------
func (c *PropertyController) DeletePropertyHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := currentUserID(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No userID in context", nil)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found", nil)
		return
	}

	if err := c.propertyService.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found", nil)
			return
		}
		utils.Logger.WithError(err).Error("Failed to delete property")
		utils.RespondError(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to delete property", nil, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
