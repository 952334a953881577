// Package memory implementa los puertos de persistencia en proceso.
// Sirve para STORAGE_DRIVER=memory (demo, desarrollo) y para las pruebas de los casos de uso.
// Los datos se pierden al reiniciar.
package memory

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
)

// Store guarda productos, ledger, proyección y lotes de importación.
type Store struct {
	mu            sync.RWMutex
	products      map[int64]*entity.Product
	bySKU         map[string]int64
	movements     map[int64][]*entity.Movement // por producto, en orden de commit
	stocks        map[int64]entity.StockLevel
	batches       map[string]*entity.ImportBatch
	lastProductID int64

	lastMovementID atomic.Int64

	locksMu sync.Mutex
	locks   map[int64]chan struct{}

	now func() time.Time
}

// Option configura el Store.
type Option func(*Store)

// WithClock reemplaza el reloj usado para sellar movimientos y fechas.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore crea un almacén vacío.
func NewStore(opts ...Option) *Store {
	s := &Store{
		products:  make(map[int64]*entity.Product),
		bySKU:     make(map[string]int64),
		movements: make(map[int64][]*entity.Movement),
		stocks:    make(map[int64]entity.StockLevel),
		batches:   make(map[string]*entity.ImportBatch),
		locks:     make(map[int64]chan struct{}),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Products devuelve el repositorio del registro de productos.
func (s *Store) Products() *ProductRepository { return &ProductRepository{s: s} }

// Movements devuelve el ledger fuera de transacción.
func (s *Store) Movements() *MovementRepository { return &MovementRepository{s: s} }

// Stocks devuelve la proyección de existencias fuera de transacción.
func (s *Store) Stocks() *StockRepository { return &StockRepository{s: s} }

// SalesImports devuelve el repositorio de lotes de importación.
func (s *Store) SalesImports() *SalesImportRepository { return &SalesImportRepository{s: s} }

// TxRunner devuelve el ejecutor de transacciones por producto.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

// lockProduct toma el candado del producto respetando la cancelación del contexto.
func (s *Store) lockProduct(ctx context.Context, productID int64) (func(), error) {
	s.locksMu.Lock()
	ch, ok := s.locks[productID]
	if !ok {
		ch = make(chan struct{}, 1)
		s.locks[productID] = ch
	}
	s.locksMu.Unlock()

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Store) committedMovements(productID int64) []*entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.movements[productID]
	out := make([]*entity.Movement, 0, len(list))
	for _, m := range list {
		out = append(out, cloneMovement(m))
	}
	return out
}

func (s *Store) committedStock(productID int64) entity.StockLevel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if level, ok := s.stocks[productID]; ok {
		return level
	}
	return entity.StockLevel{ProductID: productID}
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func cloneMovement(m *entity.Movement) *entity.Movement {
	c := *m
	return &c
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	return &c
}

func cloneBatch(b *entity.ImportBatch) *entity.ImportBatch {
	c := *b
	if b.Shortfalls != nil {
		c.Shortfalls = append([]entity.ImportShortfall(nil), b.Shortfalls...)
	}
	if b.FinishedAt != nil {
		t := *b.FinishedAt
		c.FinishedAt = &t
	}
	return &c
}
