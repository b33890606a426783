package repo

import (
	"github.com/zinlatt/betmart/internal/pg"
	accountrepo "github.com/zinlatt/betmart/internal/repo/account-repo"
	chancerepo "github.com/zinlatt/betmart/internal/repo/chance-repo"
	ledgerrepo "github.com/zinlatt/betmart/internal/repo/ledger-repo"
	settingsrepo "github.com/zinlatt/betmart/internal/repo/settings-repo"
	ticketrepo "github.com/zinlatt/betmart/internal/repo/ticket-repo"
)

// Repositories holds the concrete repositories; each service narrows them to
// its own consumer interface.
type Repositories struct {
	AccountRepo  *accountrepo.Repository
	TicketRepo   *ticketrepo.Repository
	ChanceRepo   *chancerepo.Repository
	LedgerRepo   *ledgerrepo.Repository
	SettingsRepo *settingsrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		AccountRepo:  accountrepo.New(conn),
		TicketRepo:   ticketrepo.New(conn),
		ChanceRepo:   chancerepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
		SettingsRepo: settingsrepo.New(conn),
	}
}
