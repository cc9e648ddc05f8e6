// Package chat содержит реестр подключенных клиентов чата.
// Реестр передается обработчикам явно и ключуется идентификатором сессии,
// а не глобальной картой по имени пользователя.
package chat

import "sync"

const clientBuffer = 16

// Registry хранит канал доставки на каждого подключенного клиента.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]chan []byte
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]chan []byte)}
}

// Join регистрирует клиента по идентификатору сессии и возвращает канал
// доставки. Повторное подключение той же сессии замещает прежний канал.
func (r *Registry) Join(sessionID string) <-chan []byte {
	ch := make(chan []byte, clientBuffer)

	r.mu.Lock()
	if old, ok := r.conns[sessionID]; ok {
		close(old)
	}
	r.conns[sessionID] = ch
	r.mu.Unlock()

	return ch
}

// Leave снимает регистрацию клиента и закрывает его канал. Запись удаляется
// только если она все еще принадлежит вызывающему: переподключившаяся сессия
// уже заместила канал, и завершающийся обработчик не должен ее выбивать.
func (r *Registry) Leave(sessionID string, ch <-chan []byte) {
	r.mu.Lock()
	if cur, ok := r.conns[sessionID]; ok && (<-chan []byte)(cur) == ch {
		close(cur)
		delete(r.conns, sessionID)
	}
	r.mu.Unlock()
}

// Broadcast доставляет событие всем подключенным клиентам.
// Медленный клиент с заполненным буфером событие теряет.
func (r *Registry) Broadcast(payload []byte) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ch := range r.conns {
		select {
		case ch <- payload:
		default:
		}
	}
}

// Len возвращает число подключенных клиентов.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
