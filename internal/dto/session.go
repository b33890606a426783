package dto

type SessionResponseDTO struct {
	Open    bool   `json:"open" example:"true"`
	Session string `json:"session,omitempty" example:"MORNING"`
	Reason  string `json:"reason,omitempty" example:"between sessions"`
}
