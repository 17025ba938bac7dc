package eventbus

import (
	"github.com/annel0/blocksandbox/internal/logging"
	"github.com/annel0/blocksandbox/internal/world"
	"github.com/annel0/blocksandbox/internal/world/block"
)

// StartLoggingListener подписывается на все события и пишет их в лог компонента.
// Функция неблокирующая.
func StartLoggingListener(bus *Bus, log *logging.Logger) Subscription {
	s := bus.Subscribe(Filter{}, func(ev world.BlockEvent) {
		if ev.GetType() == world.EventTypeBlockMine && ev.Drop != block.Air {
			log.Debug("[EventBus] %s %v: %s → %s, дроп %s", ev.GetType(), ev.Position, ev.Old, ev.New, ev.Drop)
			return
		}
		log.Debug("[EventBus] %s %v: %s → %s", ev.GetType(), ev.Position, ev.Old, ev.New)
	})
	log.Info("🪵 LoggingListener: подписка на все события активирована")
	return s
}
