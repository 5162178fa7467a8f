package models

type CreateSubmissionRequest struct {
	UserID   int64  `json:"user_id" validate:"required" example:"123456789"`
	UserName string `json:"user_name,omitempty" example:"@seller"`
	Server   string `json:"server" validate:"required" example:"EU1"`
	Car      string `json:"car" validate:"required" example:"Sedan"`
	// Price is the listed amount in in-game currency.
	Price       int64  `json:"price" validate:"required" example:"5000"`
	PhotoFileID string `json:"photo_file_id" validate:"required" example:"AgACAgIAAxkBAAI"`
	// FilePath is a previously resolved Telegram file path. It is stored
	// as-is but never trusted for photo fetches, because resolved paths
	// expire.
	FilePath string `json:"file_path,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
