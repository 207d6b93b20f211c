// Package pgtest offers a transaction manager for unit tests that never
// touches a database. Functions receive a nil querier.
package pgtest

import (
	"context"
	"sync"

	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
)

type TxManager struct {
	mu         sync.Mutex
	begun      int
	committed  int
	rolledBack int

	// OnBegin and OnRollback let in-memory fakes snapshot and restore state.
	OnBegin    func()
	OnRollback func()
}

func NewTxManager() *TxManager { return &TxManager{} }

func (m *TxManager) Pool() pg.Querier { return nil }

func (m *TxManager) WithTx(ctx context.Context, fn pg.TxFunc) error {
	m.mu.Lock()
	m.begun++
	onBegin, onRollback := m.OnBegin, m.OnRollback
	m.mu.Unlock()

	if onBegin != nil {
		onBegin()
	}

	if err := fn(ctx, nil); err != nil {
		if onRollback != nil {
			onRollback()
		}
		m.mu.Lock()
		m.rolledBack++
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	m.committed++
	m.mu.Unlock()
	return nil
}

func (m *TxManager) Committed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.committed
}

func (m *TxManager) RolledBack() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rolledBack
}
