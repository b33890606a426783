package dto

type LoginRequestDTO struct {
	Login    string `json:"login" example:"operator"`
	Password string `json:"password" example:"secret"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
}
