package services

import (
	"sync"

	"pepe-order/models"
)

// TableSession is the live ordering state of one device: the table it is
// seated at and its cart. Every scan, logout or reset bumps the generation so
// that results of requests started before the change can be recognised and
// dropped.
type TableSession struct {
	mu          sync.Mutex
	table       *models.TableContext
	cart        *models.CartStore
	generation  uint64
	checkingOut bool
}

func newTableSession() *TableSession {
	return &TableSession{cart: models.NewCartStore()}
}

// Start binds the session to a new table and empties the cart.
func (s *TableSession) Start(table models.TableContext) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = &table
	s.cart.Clear()
	s.generation++
	return s.generation
}

// Reset forgets the table and empties the cart.
func (s *TableSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = nil
	s.cart.Clear()
	s.generation++
}

// View runs fn with the session locked. table is nil before the first scan.
func (s *TableSession) View(fn func(table *models.TableContext, cart *models.CartStore, generation uint64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.table, s.cart, s.generation)
}

// Apply runs fn with the session locked, provided the session is still at
// generation. Otherwise nothing runs and ErrSessionChanged is returned.
func (s *TableSession) Apply(generation uint64, fn func(table *models.TableContext, cart *models.CartStore)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != generation {
		return models.ErrSessionChanged
	}
	fn(s.table, s.cart)
	return nil
}

// BeginCheckout runs fn with the session locked and, when fn succeeds, marks
// the session as checking out until the returned func is called. Only one
// checkout runs per session; a second one gets ErrCheckoutInProgress.
func (s *TableSession) BeginCheckout(fn func(table *models.TableContext, cart *models.CartStore, generation uint64) error) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkingOut {
		return nil, models.ErrCheckoutInProgress
	}
	if err := fn(s.table, s.cart, s.generation); err != nil {
		return nil, err
	}
	s.checkingOut = true

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.checkingOut = false
			s.mu.Unlock()
		})
	}, nil
}

// TableRegistry holds the table session of every device.
type TableRegistry struct {
	mu       sync.Mutex
	sessions map[string]*TableSession
}

func NewTableRegistry() *TableRegistry {
	return &TableRegistry{sessions: make(map[string]*TableSession)}
}

// Get returns the session of deviceID, creating an empty one if needed.
func (r *TableRegistry) Get(deviceID string) *TableSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[deviceID]
	if !ok {
		s = newTableSession()
		r.sessions[deviceID] = s
	}
	return s
}

// Drop resets the device's session and removes it from the registry.
func (r *TableRegistry) Drop(deviceID string) {
	r.mu.Lock()
	s, ok := r.sessions[deviceID]
	delete(r.sessions, deviceID)
	r.mu.Unlock()

	if ok {
		s.Reset()
	}
}
