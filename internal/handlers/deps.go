package handlers

import (
	"car-market-backend/internal/models"
	"car-market-backend/internal/telegram"
)

// SubmissionStore is the slice of the store the handlers rely on.
type SubmissionStore interface {
	Create(sub *models.Submission) (int64, error)
	ListPending() ([]models.Submission, error)
	Get(id int64) (*models.Submission, error)
	Delete(id int64) error
}

// Publisher posts an approved submission to the public channel.
type Publisher interface {
	PublishListing(sub *models.Submission) error
}

// PhotoResolver turns a stable file id into a live byte stream.
type PhotoResolver interface {
	ResolvePhoto(fileID string) (*telegram.Photo, error)
}
