package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/studybuddy-app/classroom-api/pkg/extract"
)

// PageList stores the ordered extracted-text structure as JSONB.
type PageList []extract.Page

// Value implements driver.Valuer.
func (p PageList) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner.
func (p *PageList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = nil
		return nil
	default:
		return fmt.Errorf("unsupported pages column type %T", src)
	}
}

// PdfDocument is a student-owned PDF with its raw bytes and extracted text.
type PdfDocument struct {
	ID         string    `db:"id" json:"id"`
	StudentID  string    `db:"student_id" json:"student_id"`
	Filename   string    `db:"filename" json:"filename"`
	Content    []byte    `db:"content" json:"-"`
	Pages      PageList  `db:"pages" json:"pages"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`
}
