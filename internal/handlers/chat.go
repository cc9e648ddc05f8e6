package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/caterquest/caterquest/internal/auth"
	"github.com/caterquest/caterquest/internal/kafka"
)

// ChatEventsHandler подключает клиента к потоку событий чата (SSE).
// Подключение регистрируется по идентификатору сессии и публикует user_join.
//
//	@Summary  Поток событий чата
//	@Produce  text/event-stream
//	@Router   /chat/events [get]
func (h *Handler) ChatEventsHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		writeErrorMsg(w, http.StatusForbidden, "forbidden")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeErrorMsg(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	if err := h.deps.Notifier.UserJoin(r.Context(), kafka.UserJoinEvent{Username: session.Username}); err != nil {
		logPublishError("user_join", err)
	}

	events := h.deps.Registry.Join(session.Token)
	defer h.deps.Registry.Leave(session.Token, events)

	// Поток живет дольше WriteTimeout сервера.
	rc := http.NewResponseController(w)
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case payload, open := <-events:
			if !open {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

type chatSendRequest struct {
	Room    string `json:"room"`
	Message string `json:"message" validate:"required"`
}

// ChatSendHandler публикует сообщение чата; имя отправителя берется из сессии.
//
//	@Summary  Отправить сообщение чата
//	@Accept   json
//	@Produce  json
//	@Router   /chat/send [post]
func (h *Handler) ChatSendHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		writeErrorMsg(w, http.StatusForbidden, "forbidden")
		return
	}

	var req chatSendRequest
	if err := h.decode(r, &req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, err.Error())
		return
	}

	event := kafka.ChatEvent{
		Room:     req.Room,
		Username: session.Username,
		Message:  req.Message,
	}
	if err := h.deps.Notifier.Chat(r.Context(), event); err != nil {
		writeErrorMsg(w, http.StatusInternalServerError, "failed to send message")
		return
	}

	writeMessage(w, http.StatusOK, "Message sent")
}
