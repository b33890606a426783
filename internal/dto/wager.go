package dto

import "time"

type PlaceWagersRequestDTO struct {
	ExternalID int64  `json:"external_id" example:"784512036"`
	Text       string `json:"text" example:"12-500 34r-1000 5h/500"`
}

type WagerTicketDTO struct {
	Ref       string    `json:"ref" example:"0c9adfb2-55c3-4f6e-9d0e-2a1f6f4b7c1d"`
	GameType  string    `json:"game_type" example:"2D"`
	Number    string    `json:"number" example:"12"`
	Stake     int64     `json:"stake" example:"500"`
	Session   string    `json:"session" example:"MORNING"`
	Status    string    `json:"status" example:"PENDING"`
	CreatedAt time.Time `json:"created_at" example:"2025-06-09T08:12:33+06:30"`
}

type PlaceWagersResponseDTO struct {
	Tickets    []WagerTicketDTO `json:"tickets"`
	FaceTotal  int64            `json:"face_total" example:"2000"`
	Debited    int64            `json:"debited" example:"1800"`
	NewBalance int64            `json:"new_balance" example:"23200"`
	Session    string           `json:"session" example:"MORNING"`
	Day        string           `json:"day" example:"2025-06-09"`
}

type HeadroomResponseDTO struct {
	Number    string `json:"number" example:"12"`
	Remaining int64  `json:"remaining" example:"350000"`
}
