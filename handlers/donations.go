package handlers

import (
	"errors"
	"net/http"

	"github.com/aidconnect/backend/store"
	"github.com/gin-gonic/gin"
)

// Donate handles POST /api/donate
//
// The body accepts a requestId for forward compatibility, but the flow
// always creates a fresh pending request for the contribution rather than
// attaching to the given one.
func (h *Handler) Donate(c *gin.Context) {
	var req struct {
		RequestID   *int64 `json:"requestId"`
		DonorName   string `json:"donorName"`
		Amount      int64  `json:"amount"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "amount and donorName are required")
		return
	}

	request, donation, err := h.store.RecordDonation(store.RecordDonationInput{
		DonorName:   req.DonorName,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			respondError(c, http.StatusBadRequest, "amount and donorName are required")
			return
		}
		respondStorageError(c, "Error processing donation", err)
		return
	}

	h.publish("donation.created", gin.H{
		"request":  request,
		"donation": donation,
	})
	respondMessage(c, "Donation submitted for approval")
}

// GetDonations handles GET /api/admin/donations
func (h *Handler) GetDonations(c *gin.Context) {
	donations, err := h.store.Donations()
	if err != nil {
		respondStorageError(c, "Error fetching donations", err)
		return
	}
	respondOK(c, donations)
}
