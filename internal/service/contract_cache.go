package service

import (
	"sync"

	"github.com/okarpov/paramgate/models"
)

// contractCache is an in-memory, name-keyed snapshot of stored contracts.
// It serves reads on the hot validation path so that a stored-contract
// validation does not touch the database. The background refresh worker
// replaces the snapshot wholesale at a configured interval.
type contractCache struct {
	mu     sync.RWMutex
	byName map[string]models.StoredContract
}

func newContractCache() *contractCache {
	return &contractCache{byName: make(map[string]models.StoredContract)}
}

func (c *contractCache) get(name string) (models.StoredContract, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	contract, ok := c.byName[name]
	return contract, ok
}

func (c *contractCache) put(contract models.StoredContract) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byName[contract.Name] = contract
}

func (c *contractCache) delete(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byName, name)
}

// replaceAll swaps the whole snapshot. Contracts deleted from the store
// since the last refresh disappear from the cache here.
func (c *contractCache) replaceAll(contracts []models.StoredContract) {
	byName := make(map[string]models.StoredContract, len(contracts))
	for _, contract := range contracts {
		byName[contract.Name] = contract
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.byName = byName
}

func (c *contractCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byName)
}
