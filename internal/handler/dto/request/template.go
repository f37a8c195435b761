package request

type CreateTemplateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Body        string `json:"body" binding:"required"`
	Channel     string `json:"channel" binding:"required"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// UpdateTemplateRequest replaces only the fields that are present.
type UpdateTemplateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Subject     *string `json:"subject,omitempty"`
	Body        *string `json:"body,omitempty"`
	Channel     *string `json:"channel,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
