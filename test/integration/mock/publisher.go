package mock

import (
	"context"
	"sync"

	"github.com/budgetease/backend/internal/domain/entity"
)

// Publisher records ledger events instead of sending them to a broker.
type Publisher struct {
	mu     sync.Mutex
	events []entity.LedgerEvent
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(_ context.Context, event entity.LedgerEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Count returns how many events of eventType were published.
func (p *Publisher) Count(eventType entity.LedgerEventType) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

func (p *Publisher) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}
