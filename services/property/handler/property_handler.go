package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	model "property-bidding/internal/models"
	property "property-bidding/internal/propertyService"
	bidhelpers "property-bidding/services/bidding/helpers"
	"property-bidding/services/property/helpers"
	"property-bidding/utils"
)

type PropertyServiceInterface interface {
	CreateProperty(ctx context.Context, caller model.Identity, input property.Input) (model.Property, error)
	UpdateProperty(ctx context.Context, id int64, caller model.Identity, input property.Input) (model.Property, error)
	DeleteProperty(ctx context.Context, id int64, caller model.Identity) error
	GetProperty(ctx context.Context, id int64, caller model.Identity) (model.Property, error)
	ListProperties(ctx context.Context, caller model.Identity) ([]model.Property, error)
}

type PropertyHandler struct {
	service PropertyServiceInterface
}

func NewPropertyHandler(service PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// CreatePropertyHandler handles POST /properties
func (h *PropertyHandler) CreatePropertyHandler(c *gin.Context) {
	var req helpers.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bidhelpers.HandleBindError(c, "CreatePropertyHandler", err)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		status, message := bidhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	caller := bidhelpers.CurrentIdentity(c)
	created, err := h.service.CreateProperty(c.Request.Context(), caller, input)
	if err != nil {
		status, message := bidhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreatePropertyHandler: failed to create property", map[string]any{
			"owner_id": caller.ID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewPropertyResponse(created), "property created successfully")
	bidhelpers.LogSuccess("CreatePropertyHandler", "property created successfully", map[string]any{
		"property_id": created.ID,
		"owner_id":    created.OwnerID,
	})
}

// ListPropertiesHandler handles GET /properties (the caller's own listings)
func (h *PropertyHandler) ListPropertiesHandler(c *gin.Context) {
	caller := bidhelpers.CurrentIdentity(c)
	properties, err := h.service.ListProperties(c.Request.Context(), caller)
	if err != nil {
		status, message := bidhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListPropertiesHandler: error listing properties", map[string]any{
			"caller_id": caller.ID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewPropertyResponses(properties), "properties retrieved successfully")
	bidhelpers.LogSuccess("ListPropertiesHandler", "properties retrieved successfully", map[string]any{
		"caller_id": caller.ID,
		"count":     len(properties),
	})
}

// GetPropertyHandler handles GET /properties/:property_id
func (h *PropertyHandler) GetPropertyHandler(c *gin.Context) {
	id, err := bidhelpers.ParseID(c.Param("property_id"))
	if err != nil {
		status, message := bidhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	caller := bidhelpers.CurrentIdentity(c)
	p, err := h.service.GetProperty(c.Request.Context(), id, caller)
	if err != nil {
		status, message := bidhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetPropertyHandler: error retrieving property", map[string]any{
			"property_id": id,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewPropertyResponse(p), "property retrieved successfully")
}

// UpdatePropertyHandler handles PUT /properties/:property_id
func (h *PropertyHandler) UpdatePropertyHandler(c *gin.Context) {
	id, err := bidhelpers.ParseID(c.Param("property_id"))
	if err != nil {
		status, message := bidhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	var req helpers.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bidhelpers.HandleBindError(c, "UpdatePropertyHandler", err)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		status, message := bidhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	caller := bidhelpers.CurrentIdentity(c)
	updated, err := h.service.UpdateProperty(c.Request.Context(), id, caller, input)
	if err != nil {
		status, message := bidhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdatePropertyHandler: failed to update property", map[string]any{
			"property_id": id,
			"caller_id":   caller.ID,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewPropertyResponse(updated), "property updated successfully")
	bidhelpers.LogSuccess("UpdatePropertyHandler", "property updated successfully", map[string]any{
		"property_id": updated.ID,
	})
}

// DeletePropertyHandler handles DELETE /properties/:property_id
func (h *PropertyHandler) DeletePropertyHandler(c *gin.Context) {
	id, err := bidhelpers.ParseID(c.Param("property_id"))
	if err != nil {
		status, message := bidhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	caller := bidhelpers.CurrentIdentity(c)
	if err := h.service.DeleteProperty(c.Request.Context(), id, caller); err != nil {
		status, message := bidhelpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeletePropertyHandler: failed to delete property", map[string]any{
			"property_id": id,
			"caller_id":   caller.ID,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "property deleted successfully")
	bidhelpers.LogSuccess("DeletePropertyHandler", "property deleted successfully", map[string]any{
		"property_id": id,
		"caller_id":   caller.ID,
	})
}
