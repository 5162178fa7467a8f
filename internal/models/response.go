package models

import "time"

type CreateSubmissionResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
}

type SubmissionResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	Server      string    `json:"server"`
	Car         string    `json:"car"`
	Price       int64     `json:"price"`
	PhotoFileID string    `json:"photo_file_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ModerationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// FromSubmission flattens the nullable DB fields for the API surface.
func FromSubmission(s Submission) SubmissionResponse {
	resp := SubmissionResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Server:      s.Server,
		Car:         s.Car,
		Price:       s.Price,
		PhotoFileID: s.PhotoFileID,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
	}
	if s.UserName.Valid {
		resp.UserName = s.UserName.String
	}
	return resp
}
