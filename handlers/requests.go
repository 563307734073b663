package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aidconnect/backend/models"
	"github.com/aidconnect/backend/store"
	"github.com/gin-gonic/gin"
)

// GetRequests handles GET /api/requests - list all aid requests
func (h *Handler) GetRequests(c *gin.Context) {
	requests, err := h.store.Requests()
	if err != nil {
		respondStorageError(c, "Error fetching requests", err)
		return
	}
	respondOK(c, requests)
}

// GetRequest handles GET /api/requests/:id
func (h *Handler) GetRequest(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Request not found")
		return
	}

	request, err := h.store.RequestByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Request not found")
			return
		}
		respondStorageError(c, "Error fetching request", err)
		return
	}
	respondOK(c, request)
}

// CreateRequest handles POST /api/requests - public submission
func (h *Handler) CreateRequest(c *gin.Context) {
	var req struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Location     string `json:"location"`
		AmountNeeded int64  `json:"amountNeeded"`
		Priority     string `json:"priority"`
		SubmittedBy  string `json:"submittedBy"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	priority := models.PriorityMedium
	if req.Priority != "" {
		parsed, err := models.ParsePriority(req.Priority)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid priority")
			return
		}
		priority = parsed
	}

	request, err := h.store.CreateRequest(store.CreateRequestInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		AmountNeeded: req.AmountNeeded,
		Priority:     priority,
		SubmittedBy:  req.SubmittedBy,
	})
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			respondError(c, http.StatusBadRequest, "Missing required fields")
			return
		}
		respondStorageError(c, "Error creating request", err)
		return
	}

	h.publish("request.created", request)
	respondOK(c, request)
}

// GetPendingRequests handles GET /api/admin/requests/pending
func (h *Handler) GetPendingRequests(c *gin.Context) {
	requests, err := h.store.PendingRequests()
	if err != nil {
		respondStorageError(c, "Error fetching pending requests", err)
		return
	}
	respondOK(c, requests)
}

// UpdateRequestStatus handles PATCH /api/requests/:id - admin approval
func (h *Handler) UpdateRequestStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	status, err := models.ParseRequestStatus(req.Status)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Request not found")
		return
	}

	updated, err := h.store.SetRequestStatus(id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Request not found")
			return
		}
		respondStorageError(c, "Error updating request", err)
		return
	}

	h.publish("request.status", updated)
	respondOK(c, updated)
}
