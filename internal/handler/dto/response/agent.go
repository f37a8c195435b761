package response

import (
	"time"

	"cargo-consolidation/internal/usecase/queries"

	"github.com/google/uuid"
)

type AgentApplicationResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Company     string     `json:"company,omitempty"`
	Experience  string     `json:"experience,omitempty"`
	Status      string     `json:"status"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy  *uuid.UUID `json:"reviewed_by,omitempty"`
	AdminNotes  string     `json:"admin_notes,omitempty"`
}

func FromAgentApplicationView(v *queries.AgentApplicationView) (*AgentApplicationResponse, error) {
	return mapInto[AgentApplicationResponse](v)
}

func FromAgentApplicationList(items []*queries.AgentApplicationView) ([]*AgentApplicationResponse, error) {
	return mapList[AgentApplicationResponse](items)
}
