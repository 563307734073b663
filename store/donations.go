package store

import (
	"fmt"

	"github.com/aidconnect/backend/models"
	"gorm.io/gorm"
)

// RecordDonationInput carries the fields of an incoming donation.
type RecordDonationInput struct {
	DonorName   string
	Amount      int64
	Description string
}

// RecordDonation creates a new pending request for the donation and the
// donation row referencing it, inside one transaction: either both rows
// persist or neither does.
//
// Note that the public API accepts a requestId on this path but the flow
// always opens a fresh request for admin approval; the donation is never
// attached to an existing request.
func (s *Store) RecordDonation(in RecordDonationInput) (*models.Request, *models.Donation, error) {
	if in.DonorName == "" || in.Amount == 0 {
		return nil, nil, fmt.Errorf("%w: amount and donorName are required", ErrValidation)
	}
	if in.Amount < 0 {
		return nil, nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	description := in.Description
	if description == "" {
		description = fmt.Sprintf("A donation of ₹%d from %s", in.Amount, in.DonorName)
	}

	request := models.Request{
		Title:        fmt.Sprintf("Donation from %s", in.DonorName),
		Description:  description,
		Location:     "",
		AmountNeeded: in.Amount,
		Priority:     models.PriorityMedium,
		Status:       models.StatusPending,
		SubmittedBy:  in.DonorName,
	}
	donation := models.Donation{
		DonorName: in.DonorName,
		Amount:    in.Amount,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&request).Error; err != nil {
			return err
		}
		donation.RequestID = request.ID
		return tx.Create(&donation).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &request, &donation, nil
}

// Donations returns all donations, newest first.
func (s *Store) Donations() ([]models.Donation, error) {
	var donations []models.Donation
	if err := s.db.Order("donated_at DESC").Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// DonationsByRequestID returns the donations attached to one request.
func (s *Store) DonationsByRequestID(requestID int64) ([]models.Donation, error) {
	var donations []models.Donation
	if err := s.db.Where("request_id = ?", requestID).
		Order("donated_at DESC").Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}
