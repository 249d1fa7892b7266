package reporting

import (
	"sync"
	"time"

	tmbdomain "github.com/devclub/sales-dashboard-api/infrastructure/integrator/tmb/domain"
)

type boletoCacheEntry struct {
	sales    []tmbdomain.BoletoSale
	storedAt time.Time
}

// BoletoCache é o cache com TTL das consultas à planilha de boletos, com
// relógio injetado para que a expiração seja testável de forma
// determinística. Pertence ao serviço de relatórios; não há cache global.
type BoletoCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]boletoCacheEntry
}

func NewBoletoCache(ttl time.Duration, now func() time.Time) *BoletoCache {
	if now == nil {
		now = time.Now
	}

	return &BoletoCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]boletoCacheEntry),
	}
}

// Get devolve a entrada da chave se ainda estiver dentro do TTL
func (c *BoletoCache) Get(key string) ([]tmbdomain.BoletoSale, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}

	return entry.sales, true
}

// Put armazena a contribuição de uma consulta, renovando o TTL da chave
func (c *BoletoCache) Put(key string, sales []tmbdomain.BoletoSale) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = boletoCacheEntry{
		sales:    sales,
		storedAt: c.now(),
	}
}
