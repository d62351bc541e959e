package enquiry

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status is the enquiry lifecycle state
type Status string

const (
	StatusNew       Status = "new"
	StatusAnswered  Status = "answered"
	StatusDismissed Status = "dismissed"
)

// Enquiry is a contact form submission
type Enquiry struct {
	ID        uuid.UUID      `db:"id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Subject   sql.NullString `db:"subject"`
	Message   string         `db:"message"`
	Status    Status         `db:"status"`
	IPAddress sql.NullString `db:"ip_address"`
	UserAgent sql.NullString `db:"user_agent"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// IsOpen reports whether the enquiry still needs a reply
func (e *Enquiry) IsOpen() bool {
	return e.Status == StatusNew
}
