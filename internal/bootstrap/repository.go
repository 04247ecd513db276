package bootstrap

import (
	ordereventv1 "github.com/muhammadchandra19/nasdaq-itch/internal/domain/order-event/v1"
	loadrun "github.com/muhammadchandra19/nasdaq-itch/internal/infrastructure/questdb/load-run"
	orderevent "github.com/muhammadchandra19/nasdaq-itch/internal/infrastructure/questdb/order-event"
)

// Repository is the set of QuestDB repositories.
type Repository struct {
	OrderEventRepository ordereventv1.Repository
	LoadRunRepository    loadrun.LoadRunRepository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	b.Repository.OrderEventRepository = orderevent.NewRepository(b.QuestDB)
	b.Repository.LoadRunRepository = loadrun.NewRepository(b.QuestDB)
}
