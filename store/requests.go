package store

import (
	"errors"
	"fmt"

	"github.com/aidconnect/backend/models"
	"gorm.io/gorm"
)

// CreateRequestInput carries the fields of a new aid request.
type CreateRequestInput struct {
	Title        string
	Description  string
	Location     string
	AmountNeeded int64
	Priority     models.Priority
	SubmittedBy  string
}

func (in *CreateRequestInput) validate() error {
	if in.Title == "" || in.Description == "" || in.SubmittedBy == "" {
		return fmt.Errorf("%w: title, description and submittedBy are required", ErrValidation)
	}
	if in.AmountNeeded <= 0 {
		return fmt.Errorf("%w: amountNeeded must be positive", ErrValidation)
	}
	return nil
}

// CreateRequest inserts a new request with status pending.
func (s *Store) CreateRequest(in CreateRequestInput) (*models.Request, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	request := models.Request{
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		AmountNeeded: in.AmountNeeded,
		Priority:     priority,
		Status:       models.StatusPending,
		SubmittedBy:  in.SubmittedBy,
	}

	if err := s.db.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// Requests returns all requests, newest first.
func (s *Store) Requests() ([]models.Request, error) {
	var requests []models.Request
	if err := s.db.Order("posted_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// PendingRequests returns requests awaiting admin review, newest first.
func (s *Store) PendingRequests() ([]models.Request, error) {
	var requests []models.Request
	if err := s.db.Where("status = ?", models.StatusPending).
		Order("posted_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// RequestByID fetches a single request.
func (s *Store) RequestByID(id int64) (*models.Request, error) {
	var request models.Request
	if err := s.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// SetRequestStatus updates the status field and returns the updated row.
// Any of the three statuses may be set at any time; there is no transition
// guard on re-approving or reopening a request.
func (s *Store) SetRequestStatus(id int64, status models.RequestStatus) (*models.Request, error) {
	result := s.db.Model(&models.Request{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.RequestByID(id)
}
