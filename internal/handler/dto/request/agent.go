package request

type CreateAgentApplicationRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Company    string `json:"company,omitempty"`
	Experience string `json:"experience,omitempty"`
}

type ReviewAgentApplicationRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"admin_notes,omitempty"`
}
