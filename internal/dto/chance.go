package dto

type ChancePlayRequestDTO struct {
	ExternalID int64  `json:"external_id" example:"784512036"`
	Stake      int64  `json:"stake" example:"1000"`
	Choice     string `json:"choice" example:"HIGH"`
}

type ChancePlayResponseDTO struct {
	Ref        string `json:"ref" example:"7b2f3d44-9a1e-4c8f-8b2a-0d5e6f7a8b9c"`
	Win        bool   `json:"win" example:"true"`
	ResultNum  int    `json:"result_num" example:"73"`
	ResultSide string `json:"result_side" example:"HIGH"`
	Payout     int64  `json:"payout" example:"1800"`
	NewBalance int64  `json:"new_balance" example:"25800"`
}
