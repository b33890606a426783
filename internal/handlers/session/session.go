package session

import (
	"context"
	"net/http"

	"github.com/zinlatt/betmart/internal/dto"
	"github.com/zinlatt/betmart/pkg/gametime"
	"github.com/zinlatt/betmart/pkg/utils"
)

type Service interface {
	WindowStatus(ctx context.Context) (gametime.Status, error)
}

type SessionHandler struct {
	sessionService Service
}

func New(sessionService Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// GetSession godoc
//
//	@Summary		Current betting window
//	@Description	Whether a session window is open right now, and which one. A closed window carries the reason.
//	@Tags			Session
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SessionResponseDTO	"Window status"
//	@Failure		401	{object}	utils.Response			"Not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/session [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	status, err := h.sessionService.WindowStatus(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{
		Open:    status.Open,
		Session: status.Session,
		Reason:  status.Reason,
	})
}
