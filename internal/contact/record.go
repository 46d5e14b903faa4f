package contact

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Record is a stored contact submission.
type Record struct {
	bun.BaseModel `bun:"table:contact_submissions,alias:cs"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Email     string    `bun:"email,notnull" json:"email"`
	Company   string    `bun:"company" json:"company,omitempty"`
	Phone     string    `bun:"phone" json:"phone,omitempty"`
	Subject   string    `bun:"subject" json:"subject,omitempty"`
	Message   string    `bun:"message,notnull" json:"message"`
	Lang      string    `bun:"lang" json:"lang,omitempty"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt"`
}
