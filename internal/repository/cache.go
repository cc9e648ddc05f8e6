package repository

import (
	"container/list"
	"context"
	"log"
	"sync"
	"time"
)

type (
	// MemListingCache хранит сериализованные ответы выдачи по ключу фильтра.
	// Запись действительна, пока now - storedAt < ttl; устаревшие записи
	// отбрасываются лениво при чтении, janitor подчищает их фоном.
	// Замещение записи по ключу атомарно под мьютексом.
	MemListingCache struct {
		entries  map[string]*list.Element
		lruList  *list.List
		mu       sync.Mutex
		maxItems int
		ttl      time.Duration
		now      func() time.Time
	}

	listingEntry struct {
		key      string
		payload  []byte
		storedAt time.Time
	}
)

func NewMemListingCache(maxItems int, ttl time.Duration) *MemListingCache {
	return &MemListingCache{
		entries:  make(map[string]*list.Element),
		lruList:  list.New(),
		maxItems: maxItems,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Lookup возвращает сохраненный ответ, если запись по ключу еще действительна.
func (c *MemListingCache) Lookup(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.entries[key]
	if !exists {
		return nil, false
	}

	entry := elem.Value.(*listingEntry)
	if c.expired(entry) {
		c.removeElement(elem)
		return nil, false
	}

	c.lruList.MoveToFront(elem)
	return entry.payload, true
}

// Store замещает запись по ключу свежим ответом с текущей меткой времени.
func (c *MemListingCache) Store(key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.entries[key]; exists {
		c.lruList.MoveToFront(elem)
		entry := elem.Value.(*listingEntry)
		entry.payload = payload
		entry.storedAt = c.now()
		return
	}

	if c.maxItems > 0 && c.lruList.Len() >= c.maxItems {
		c.evictOldest()
	}

	elem := c.lruList.PushFront(&listingEntry{
		key:      key,
		payload:  payload,
		storedAt: c.now(),
	})
	c.entries[key] = elem
}

// StartJanitor запускает фоновую очистку устаревших записей.
func (c *MemListingCache) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed := c.removeExpired()
				if removed > 0 {
					log.Printf("listing cache janitor removed %d expired entries", removed)
				}
			}
		}
	}()
}

func (c *MemListingCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lruList.Len()
}

func (c *MemListingCache) expired(entry *listingEntry) bool {
	return c.ttl > 0 && c.now().Sub(entry.storedAt) >= c.ttl
}

func (c *MemListingCache) removeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for elem := c.lruList.Back(); elem != nil; {
		prev := elem.Prev()
		if c.expired(elem.Value.(*listingEntry)) {
			c.removeElement(elem)
			removed++
		}
		elem = prev
	}
	return removed
}

func (c *MemListingCache) evictOldest() {
	if elem := c.lruList.Back(); elem != nil {
		c.removeElement(elem)
	}
}

func (c *MemListingCache) removeElement(elem *list.Element) {
	c.lruList.Remove(elem)
	delete(c.entries, elem.Value.(*listingEntry).key)
}
