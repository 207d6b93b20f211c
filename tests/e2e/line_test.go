//go:build integration

package e2e

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
)

var _ = Describe("Production line", Ordered, func() {
	var (
		assembly  string
		component string
		serials   []string
	)

	BeforeAll(func() {
		assembly, component = seedModel("PX1", "3", 10)
	})

	It("resolves the configured route with mandatory stations and caches it", func() {
		r := routeSvc.RouteForModel(ctx, "PX1")
		Expect(r.UsedFallback).To(BeFalse())
		Expect(r.Stations).To(Equal([]string{"b1", "b5", "b8"}))

		cached, err := routeCache.Get(ctx, "PX1")
		Expect(err).NotTo(HaveOccurred())
		Expect(cached).NotTo(BeNil())
		Expect(cached.Stations).To(Equal(r.Stations))
	})

	It("falls back to mandatory stations for a model without configuration", func() {
		r := routeSvc.RouteForModel(ctx, "UNKNOWN")
		Expect(r.UsedFallback).To(BeTrue())
		Expect(r.Stations).To(Equal([]string{"b5", "b8"}))
	})

	It("launches orders and reserves components", func() {
		res, err := prodSvc.Launch(ctx, model.LaunchParams{ModelCode: "PX1", Quantity: 2, User: "planner"})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Serials).To(HaveLen(2))
		serials = res.Serials

		Expect(stockOf(component)).To(Equal(int64(6)))

		for _, sn := range serials {
			ord, err := scanSvc.Order(ctx, sn)
			Expect(err).NotTo(HaveOccurred())
			Expect(ord.Status).To(Equal(model.OrderStatusQueued))
			Expect(ord.CurrentStation).To(Equal(model.StationStock))
		}
	})

	It("rejects a launch that would overdraw a component", func() {
		_, err := prodSvc.Launch(ctx, model.LaunchParams{ModelCode: "PX1", Quantity: 4, User: "planner"})
		Expect(err).To(HaveOccurred())

		var se *model.ShortageError
		Expect(errors.As(err, &se)).To(BeTrue())
		Expect(se.Shortages).To(HaveLen(1))
		Expect(se.Shortages[0].Code).To(Equal(component))

		Expect(stockOf(component)).To(Equal(int64(6)))
	})

	It("reports build capacity from component stock", func() {
		c, err := prodSvc.Capacity(ctx, "PX1")
		Expect(err).NotTo(HaveOccurred())
		Expect(c.AssemblyCode).To(Equal(assembly))
		Expect(c.Units).To(Equal(int64(3)))
		Expect(c.Bottlenecks).To(HaveLen(1))
		Expect(c.Bottlenecks[0].Code).To(Equal(component))

		issues, err := prodSvc.ValidatePlan(ctx, []model.PlanLine{
			{ModelCode: "PX1", Quantity: 1},
			{ModelCode: "NOPE", Quantity: 1},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(issues).To(Equal([]model.PlanIssue{{ModelCode: "NOPE", Reason: "unknown model"}}))
	})

	It("finds launched orders by model", func() {
		page, err := scanSvc.Search(ctx, model.OrderFilter{ModelCode: "px1", Status: model.OrderStatusQueued})
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Total).To(Equal(int64(2)))
		Expect(page.Items).To(HaveLen(2))

		page, err = scanSvc.Search(ctx, model.OrderFilter{Serial: serials[1], PageSize: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Total).To(Equal(int64(1)))
		Expect(page.Items[0].Serial).To(Equal(serials[1]))
	})

	It("walks a unit through the route and produces a finished good", func() {
		sn := serials[0]

		steps := []struct {
			raw     string
			outcome model.ScanOutcome
			station string
		}{
			{"b1-" + sn, model.OutcomeStarted, "b1"},
			{"b1-" + sn, model.OutcomeFinished, "b5"},
			{"b5-" + sn + "+F", model.OutcomeStarted, "b5"},
			{"b5-" + sn, model.OutcomeFinished, "b8"},
			{"b8:" + sn, model.OutcomeStarted, "b8"},
		}
		for _, st := range steps {
			res, err := scanSvc.Scan(ctx, model.ScanRequest{Raw: st.raw, Operator: "ana"})
			Expect(err).NotTo(HaveOccurred(), st.raw)
			Expect(res.Outcome).To(Equal(st.outcome), st.raw)
			Expect(res.Order.CurrentStation).To(Equal(st.station), st.raw)
		}

		out, err := scanSvc.ApplyResult(ctx, model.ExternalResult{
			Serial: sn,
			Source: model.SourceChecklist,
			Status: model.ExternalOK,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(out.VisitClosed).To(BeTrue())
		Expect(out.FinishedGood).NotTo(BeNil())
		Expect(out.Order.Status).To(Equal(model.OrderStatusDone))
		Expect(out.Order.CurrentStation).To(Equal(model.StationFinal))

		Expect(stockOf(assembly)).To(Equal(int64(1)))
		Expect(sender.Codes()).To(ContainElement(assembly))

		visits, err := scanSvc.Visits(ctx, sn)
		Expect(err).NotTo(HaveOccurred())
		Expect(visits).To(HaveLen(3))
		for _, v := range visits {
			Expect(v.FinishedAt).NotTo(BeNil())
		}
	})

	It("lists the assembly among reorder needs", func() {
		needs, err := ropSvc.ListNeeds(ctx)
		Expect(err).NotTo(HaveOccurred())

		var found bool
		for _, n := range needs {
			if n.Code == assembly {
				found = true
				Expect(n.SuggestedQty).To(Equal(int64(4)))
				Expect(n.CapacityZero).To(BeFalse())
			}
		}
		Expect(found).To(BeTrue())
	})

	It("undoes a completed unit and takes the finished good back", func() {
		sn := serials[0]

		res, err := scanSvc.Undo(ctx, model.UndoRequest{Serial: sn, Operator: "ana"})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.FinishedGoodReversed).To(BeTrue())
		Expect(res.Order.Status).To(Equal(model.OrderStatusInProgress))
		Expect(res.Order.CurrentStation).To(Equal("b8"))

		Expect(stockOf(assembly)).To(BeZero())
	})

	It("cancels a queued order and returns its components", func() {
		ord, err := prodSvc.Cancel(ctx, serials[1], "planner")
		Expect(err).NotTo(HaveOccurred())
		Expect(ord.Status).To(Equal(model.OrderStatusCancelled))
		Expect(stockOf(component)).To(Equal(int64(8)))

		_, err = scanSvc.Scan(ctx, model.ScanRequest{Raw: "b1-" + serials[1]})
		Expect(err).To(MatchError(model.ErrOrderClosed))
	})

	It("invalidates the cached route", func() {
		Expect(routeSvc.Invalidate(ctx, "PX1")).To(Succeed())

		cached, err := routeCache.Get(ctx, "PX1")
		Expect(err).NotTo(HaveOccurred())
		Expect(cached).To(BeNil())
	})
})
