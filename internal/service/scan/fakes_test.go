package scan

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
)

// memStore keeps orders and visits in memory. snapshot and restore are hooked
// into pgtest.TxManager so a failed transaction leaves nothing behind.
type memStore struct {
	mu     sync.Mutex
	orders map[string]model.WorkOrder
	visits []model.StationVisit
	nextID int64

	savedOrders map[string]model.WorkOrder
	savedVisits []model.StationVisit
	savedNextID int64
}

func newMemStore() *memStore {
	return &memStore{orders: make(map[string]model.WorkOrder)}
}

func (m *memStore) snapshot() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.savedOrders = maps.Clone(m.orders)
	m.savedVisits = slices.Clone(m.visits)
	m.savedNextID = m.nextID
}

func (m *memStore) restore() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = m.savedOrders
	m.visits = m.savedVisits
	m.nextID = m.savedNextID
}

func (m *memStore) addOrder(o model.WorkOrder) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.ID = int64(len(m.orders) + 1)
	m.orders[o.Serial] = o
}

func (m *memStore) addVisit(v model.StationVisit) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	v.ID = m.nextID
	m.visits = append(m.visits, v)
	return v.ID
}

func (m *memStore) order(serial string) model.WorkOrder {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.orders[serial]
}

func (m *memStore) openVisits(orderID int64) []model.StationVisit {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.StationVisit
	for _, v := range m.visits {
		if v.OrderID == orderID && v.FinishedAt == nil {
			out = append(out, v)
		}
	}
	return out
}

func (m *memStore) allVisits(orderID int64) []model.StationVisit {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.StationVisit
	for _, v := range m.visits {
		if v.OrderID == orderID {
			out = append(out, v)
		}
	}
	return out
}

type memOrders struct{ *memStore }

func (r memOrders) Search(_ context.Context, _ pg.Querier, f model.OrderFilter) ([]model.WorkOrder, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var hits []model.WorkOrder
	for _, o := range r.orders {
		if f.Serial != "" && !strings.Contains(strings.ToUpper(o.Serial), strings.ToUpper(f.Serial)) {
			continue
		}
		if f.ModelCode != "" && !strings.Contains(strings.ToUpper(o.ModelCode), strings.ToUpper(f.ModelCode)) {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		hits = append(hits, o)
	}
	slices.SortFunc(hits, func(a, b model.WorkOrder) int { return int(b.ID - a.ID) })

	total := int64(len(hits))
	start := min(int(f.Offset()), len(hits))
	end := min(start+f.PageSize, len(hits))
	return hits[start:end], total, nil
}

func (r memOrders) OrderBySerial(_ context.Context, _ pg.Querier, serial string) (*model.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[serial]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	return &o, nil
}

func (r memOrders) OrderBySerialForUpdate(ctx context.Context, q pg.Querier, serial string) (*model.WorkOrder, error) {
	return r.OrderBySerial(ctx, q, serial)
}

func (r memOrders) Update(_ context.Context, _ pg.Querier, id int64, upd model.OrderUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for serial, o := range r.orders {
		if o.ID != id {
			continue
		}
		if upd.Status != nil {
			o.Status = *upd.Status
		}
		if upd.CurrentStation != nil {
			o.CurrentStation = *upd.CurrentStation
		}
		if upd.FinishedAt != nil {
			o.FinishedAt = upd.FinishedAt
		}
		if upd.ClearFinishedAt {
			o.FinishedAt = nil
		}
		if upd.ExternalTestFlag != nil {
			o.ExternalTestFlag = *upd.ExternalTestFlag
		}
		if upd.ExternalTestStatus != nil {
			o.ExternalTestStatus = *upd.ExternalTestStatus
		}
		if upd.ExternalTestLastAt != nil {
			o.ExternalTestLastAt = upd.ExternalTestLastAt
		}
		r.orders[serial] = o
		return nil
	}
	return model.ErrOrderNotFound
}

type memVisits struct{ *memStore }

func (r memVisits) Create(_ context.Context, _ pg.Querier, v *model.StationVisit) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.visits {
		if existing.OrderID == v.OrderID && existing.FinishedAt == nil {
			return 0, errDuplicateOpenVisit
		}
	}
	r.nextID++
	stored := *v
	stored.ID = r.nextID
	r.visits = append(r.visits, stored)
	return stored.ID, nil
}

func (r memVisits) ListOpen(_ context.Context, _ pg.Querier, orderID int64) ([]model.StationVisit, error) {
	open := r.openVisits(orderID)
	slices.SortFunc(open, func(a, b model.StationVisit) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	return open, nil
}

func (r memVisits) ListByOrder(_ context.Context, _ pg.Querier, orderID int64) ([]model.StationVisit, error) {
	return r.allVisits(orderID), nil
}

func (r memVisits) LastClosed(_ context.Context, _ pg.Querier, orderID int64, station string) (*model.StationVisit, error) {
	var last *model.StationVisit
	for _, v := range r.allVisits(orderID) {
		if v.FinishedAt == nil || (station != "" && v.StationID != station) {
			continue
		}
		if last == nil || !v.FinishedAt.Before(*last.FinishedAt) {
			last = &v
		}
	}
	if last == nil {
		return nil, model.ErrVisitNotFound
	}
	return last, nil
}

func (r memVisits) FinishedStations(_ context.Context, _ pg.Querier, orderID int64) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, v := range r.allVisits(orderID) {
		if v.FinishedAt != nil {
			out[v.StationID] = true
		}
	}
	return out, nil
}

func (r memVisits) update(id int64, fn func(v *model.StationVisit)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.visits {
		if r.visits[i].ID == id {
			fn(&r.visits[i])
			return nil
		}
	}
	return model.ErrVisitNotFound
}

func (r memVisits) Close(_ context.Context, _ pg.Querier, id int64, c model.VisitClose) error {
	return r.update(id, func(v *model.StationVisit) {
		at := c.FinishedAt
		v.FinishedAt = &at
		v.ReworkFlag = c.ReworkFlag
		if c.Result != model.ResultNone {
			v.Result = c.Result
		}
		if c.Workstation != "" {
			v.Workstation = c.Workstation
		}
		if c.Notes != "" {
			v.Notes = c.Notes
		}
	})
}

func (r memVisits) CloseAllOpen(_ context.Context, _ pg.Querier, orderID, keepID int64, at time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for i := range r.visits {
		v := &r.visits[i]
		if v.OrderID == orderID && v.FinishedAt == nil && v.ID != keepID {
			stamp := at
			v.FinishedAt = &stamp
			n++
		}
	}
	return n, nil
}

func (r memVisits) SetOperator(_ context.Context, _ pg.Querier, id int64, operator string) error {
	return r.update(id, func(v *model.StationVisit) { v.Operator = operator })
}

func (r memVisits) Reopen(_ context.Context, _ pg.Querier, id int64) error {
	return r.update(id, func(v *model.StationVisit) {
		v.FinishedAt = nil
		v.Result = model.ResultNone
		v.ReworkFlag = false
	})
}

func (r memVisits) Delete(_ context.Context, _ pg.Querier, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.visits {
		if v.ID == id {
			r.visits = slices.Delete(r.visits, i, i+1)
			return nil
		}
	}
	return model.ErrVisitNotFound
}
