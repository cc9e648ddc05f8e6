package chat

import "testing"

func TestRegistryBroadcast(t *testing.T) {
	r := NewRegistry()

	a := r.Join("session-a")
	b := r.Join("session-b")

	r.Broadcast([]byte(`{"message":"hi"}`))

	for name, ch := range map[string]<-chan []byte{"a": a, "b": b} {
		select {
		case got := <-ch:
			if string(got) != `{"message":"hi"}` {
				t.Fatalf("client %s got %s", name, got)
			}
		default:
			t.Fatalf("client %s received nothing", name)
		}
	}
}

func TestRegistryLeave(t *testing.T) {
	r := NewRegistry()

	ch := r.Join("session-a")
	r.Leave("session-a", ch)

	if _, open := <-ch; open {
		t.Fatal("channel should be closed after Leave")
	}
	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
}

func TestRegistryRejoinReplacesConnection(t *testing.T) {
	r := NewRegistry()

	old := r.Join("session-a")
	fresh := r.Join("session-a")

	if _, open := <-old; open {
		t.Fatal("old channel should be closed on rejoin")
	}

	r.Broadcast([]byte("x"))
	select {
	case <-fresh:
	default:
		t.Fatal("fresh channel should receive broadcasts")
	}
	if r.Len() != 1 {
		t.Fatalf("expected one connection, got %d", r.Len())
	}
}

func TestRegistryStaleLeaveKeepsFreshConnection(t *testing.T) {
	r := NewRegistry()

	old := r.Join("session-a")
	fresh := r.Join("session-a")

	// Завершающийся обработчик старого подключения не выбивает новое.
	r.Leave("session-a", old)

	if r.Len() != 1 {
		t.Fatalf("expected one connection, got %d", r.Len())
	}
	r.Broadcast([]byte(`{"message":"hi"}`))
	select {
	case got, open := <-fresh:
		if !open {
			t.Fatal("fresh channel was closed by the stale Leave")
		}
		if string(got) != `{"message":"hi"}` {
			t.Fatalf("fresh channel got %s", got)
		}
	default:
		t.Fatal("fresh channel received nothing")
	}

	r.Leave("session-a", fresh)
	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
}
