package state

import (
	"sync"

	"techparts-store/internal/cart"
	"techparts-store/internal/catalog"
	"techparts-store/internal/orders"
	"techparts-store/internal/profile"
)

// App is the single owner of all running-session state: the catalog, the
// order book, the cart and the store profile. The reference system processes
// one UI event at a time; the mutex reproduces that discipline, so every
// operation sees the aggregates quiescent and runs to completion before the
// next one starts.
type App struct {
	mu sync.Mutex

	Catalog *catalog.Store
	Orders  *orders.Book
	Cart    *cart.Session
	Profile *profile.Manager
}

// New assembles the application state container.
func New(c *catalog.Store, b *orders.Book, s *cart.Session, p *profile.Manager) *App {
	return &App{
		Catalog: c,
		Orders:  b,
		Cart:    s,
		Profile: p,
	}
}

// Lock serializes access to the aggregates. Callers hold the lock for the
// duration of one operation and its state read-back.
func (a *App) Lock() { a.mu.Lock() }

// Unlock releases the lock taken by Lock.
func (a *App) Unlock() { a.mu.Unlock() }
