// internal/app/bot/poller.go
package bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Poller runs the long-poll loop, feeding each update to the dispatch
// function on a background goroutine.
type Poller struct {
	api     *tgbotapi.BotAPI
	timeout int
	handle  func(tgbotapi.Update)
	log     *zap.Logger

	stopCh chan struct{}
	wg     sync.WaitGroup
}

func NewPoller(api *tgbotapi.BotAPI, timeout int, handle func(tgbotapi.Update), logger *zap.Logger) *Poller {
	return &Poller{
		api:     api,
		timeout: timeout,
		handle:  handle,
		log:     logger,
		stopCh:  make(chan struct{}),
	}
}

func (p *Poller) Start() {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = p.timeout
	updates := p.api.GetUpdatesChan(cfg)

	p.wg.Add(1)
	go p.run(updates)
	p.log.Info("update poller started", zap.Int("timeout", p.timeout))
}

func (p *Poller) Stop() {
	p.api.StopReceivingUpdates()
	close(p.stopCh)
	p.wg.Wait()
	p.log.Info("update poller stopped")
}

func (p *Poller) run(updates tgbotapi.UpdatesChannel) {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopCh:
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			p.handle(update)
		}
	}
}
