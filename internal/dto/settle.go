package dto

type SettleRequestDTO struct {
	GameType  string `json:"game_type" example:"2D"`
	WinNumber string `json:"win_number" example:"48"`
	Session   string `json:"session,omitempty" example:"MORNING"`
	Day       string `json:"day,omitempty" example:"2025-06-09"`
}

type SettleResponseDTO struct {
	Session   string `json:"session" example:"MORNING"`
	Day       string `json:"day" example:"2025-06-09"`
	Processed int    `json:"processed" example:"120"`
	Winners   int    `json:"winners" example:"7"`
	Losers    int    `json:"losers" example:"113"`
	Failed    int    `json:"failed" example:"0"`
	TotalPaid int64  `json:"total_paid" example:"280000"`
}

type UpdateSettingsRequestDTO struct {
	Settings map[string]string `json:"settings"`
}

type SettingsResponseDTO struct {
	Settings map[string]string `json:"settings"`
}
