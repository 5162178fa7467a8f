package models

import (
	"database/sql"
	"time"
)

const StatusPending = "pending"

type Submission struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"user_id"`
	UserName    sql.NullString `json:"user_name,omitempty"`
	Server      string         `json:"server"`
	Car         string         `json:"car"`
	Price       int64          `json:"price"`
	PhotoFileID string         `json:"photo_file_id"`
	FilePath    sql.NullString `json:"file_path,omitempty"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}
