package service

import (
	"github.com/nftperks/raffleport/internal/cache"
	"github.com/nftperks/raffleport/internal/events"
	"github.com/nftperks/raffleport/internal/pg"
	"github.com/nftperks/raffleport/internal/repo"
	"github.com/nftperks/raffleport/internal/service/ledgerservice"
	"github.com/nftperks/raffleport/internal/service/raffleservice"
	"github.com/nftperks/raffleport/internal/service/validationservice"
)

type Services struct {
	ValidationService *validationservice.Service
	LedgerService     *ledgerservice.Service
	RaffleService     *raffleservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, bus *events.Bus, balanceCache *cache.BalanceCache, clock cache.Clock) *Services {
	validationService := validationservice.New(repo.RaffleRepo, repo.BalanceRepo, repo.EntryRepo, balanceCache, clock)
	ledgerService := ledgerservice.New(repo.RaffleRepo, repo.BalanceRepo, repo.EntryRepo, txManager, bus, clock)
	raffleService := raffleservice.New(repo.RaffleRepo, bus, clock)

	return &Services{
		ValidationService: validationService,
		LedgerService:     ledgerService,
		RaffleService:     raffleService,
	}
}
