package client

import (
	"context"
	"log"
	"sync"
)

type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type SessionSnapshot struct {
	User    *UserInfo
	IsAdmin bool
	Loading bool
}

// Subscription is the handle returned by Subscribe. Cancel releases it
// deterministically; a canceled subscription never fires again.
type Subscription struct {
	provider *SessionProvider
	id       int
}

func (s *Subscription) Cancel() {
	s.provider.mu.Lock()
	delete(s.provider.subs, s.id)
	s.provider.mu.Unlock()
}

// SessionProvider owns the auth state. Auth-state changes (sign-in, sign-out,
// refresh) notify subscribers synchronously.
type SessionProvider struct {
	client *Client

	mu     sync.Mutex
	snap   SessionSnapshot
	subs   map[int]func(SessionSnapshot)
	nextID int
}

func NewSessionProvider(c *Client) *SessionProvider {
	return &SessionProvider{
		client: c,
		snap:   SessionSnapshot{Loading: true},
		subs:   make(map[int]func(SessionSnapshot)),
	}
}

func (p *SessionProvider) Subscribe(fn func(SessionSnapshot)) *Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	id := p.nextID
	p.subs[id] = fn
	return &Subscription{provider: p, id: id}
}

func (p *SessionProvider) Snapshot() SessionSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

func (p *SessionProvider) setState(user *UserInfo, isAdmin bool) {
	p.mu.Lock()
	p.snap = SessionSnapshot{User: user, IsAdmin: isAdmin, Loading: false}
	snap := p.snap
	subs := make([]func(SessionSnapshot), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Refresh fetches the current session. Without a token there is no session;
// with one, the server resolves the admin flag. A failed lookup fails closed.
func (p *SessionProvider) Refresh(ctx context.Context) {
	if p.client.Token() == "" {
		p.setState(nil, false)
		return
	}

	var payload struct {
		User    UserInfo `json:"user"`
		IsAdmin bool     `json:"is_admin"`
	}
	if err := p.client.doJSON(ctx, "GET", "/admin/session", nil, &payload); err != nil {
		log.Println("Error fetching session:", err)
		p.setState(nil, false)
		return
	}

	p.setState(&payload.User, payload.IsAdmin)
}

func (p *SessionProvider) SignIn(ctx context.Context, email, password string) error {
	var payload struct {
		Token   string   `json:"token"`
		User    UserInfo `json:"user"`
		IsAdmin bool     `json:"is_admin"`
	}
	err := p.client.doJSON(ctx, "POST", "/admin/login", map[string]string{
		"email":    email,
		"password": password,
	}, &payload)
	if err != nil {
		return err
	}

	p.client.setToken(payload.Token)
	p.setState(&payload.User, payload.IsAdmin)
	return nil
}

func (p *SessionProvider) SignOut(ctx context.Context) error {
	err := p.client.doJSON(ctx, "POST", "/admin/logout", nil, nil)
	p.client.setToken("")
	p.setState(nil, false)
	return err
}
