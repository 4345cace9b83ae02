package dto

import (
	"time"

	"github.com/studybuddy-app/classroom-api/internal/models"
)

// UploadContentRequest is the multipart course-material payload.
type UploadContentRequest struct {
	Description string `form:"description" validate:"required"`
}

// ContentItem is one course material entry as listed to class members.
type ContentItem struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	StorageRef  string    `json:"storage_ref"`
	Description string    `json:"description"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// DownloadLink wraps the constructed retrieval URL.
type DownloadLink struct {
	URL string `json:"url"`
}

// NewContentItem projects a content row.
func NewContentItem(c *models.ClassroomContent) ContentItem {
	return ContentItem{
		ID:          c.ID,
		Filename:    c.Filename,
		StorageRef:  c.StorageRef,
		Description: c.Description,
		UploadedAt:  c.UploadedAt,
	}
}

// NewContentItems projects a slice of content rows.
func NewContentItems(contents []models.ClassroomContent) []ContentItem {
	out := make([]ContentItem, 0, len(contents))
	for i := range contents {
		out = append(out, NewContentItem(&contents[i]))
	}
	return out
}
