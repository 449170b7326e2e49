package repo

import (
	"github.com/nftperks/raffleport/internal/pg"
	balancerepo "github.com/nftperks/raffleport/internal/repo/balance-repo"
	entryrepo "github.com/nftperks/raffleport/internal/repo/entry-repo"
	rafflerepo "github.com/nftperks/raffleport/internal/repo/raffle-repo"
)

type Repositories struct {
	RaffleRepo  *rafflerepo.Repository
	BalanceRepo *balancerepo.Repository
	EntryRepo   *entryrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	raffleRepo := rafflerepo.New(conn, txManager)
	balanceRepo := balancerepo.New(conn, txManager)
	entryRepo := entryrepo.New(conn)

	return &Repositories{
		RaffleRepo:  raffleRepo,
		BalanceRepo: balanceRepo,
		EntryRepo:   entryRepo,
	}
}
