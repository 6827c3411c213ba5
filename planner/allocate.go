package planner

import (
	"context"
	"time"

	"github.com/katalvlaran/cityflow/allocation"
	"github.com/katalvlaran/cityflow/knapsack"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FleetReport holds the bus and metro schedules.
type FleetReport struct {
	Buses allocation.Schedule `json:"buses"`
	Metro allocation.Schedule `json:"metro"`
}

// AllocationReport is the combined output of AllocateAll.
type AllocationReport struct {
	Fleet       FleetReport                `json:"fleet"`
	Maintenance allocation.MaintenancePlan `json:"maintenance"`
}

func (e *Engine) allocationOptions() []allocation.Option {
	return []allocation.Option{
		allocation.WithTrafficWeight(e.cfg.Allocation.TrafficWeight),
		allocation.WithSolverOptions(knapsack.WithMaxCells(e.cfg.Allocation.MaxCells)),
	}
}

// ScheduleFleet assigns buses to bus routes and trains to metro lines.
func (e *Engine) ScheduleFleet(buses, trains int) (rep FleetReport, err error) {
	defer func(t time.Time) {
		e.observe("fleet", t, err,
			zap.Int("buses", buses), zap.Int("trains", trains),
			zap.Int("bus_routes", len(rep.Buses.Selected)), zap.Int("metro_lines", len(rep.Metro.Selected)))
	}(time.Now())

	opts := e.allocationOptions()
	if rep.Buses, err = allocation.ScheduleBuses(e.snap.Buses(), buses, opts...); err != nil {
		return FleetReport{}, wrap("fleet", err)
	}
	if rep.Metro, err = allocation.ScheduleMetro(e.snap.Metro(), trains, opts...); err != nil {
		return FleetReport{}, wrap("fleet", err)
	}

	return rep, nil
}

// PlanMaintenance selects roads to repair within budget.
func (e *Engine) PlanMaintenance(budget float64) (plan allocation.MaintenancePlan, err error) {
	defer func(t time.Time) {
		e.observe("maintenance", t, err,
			zap.Float64("budget", budget), zap.Int("repairs", len(plan.Repairs)))
	}(time.Now())

	plan, err = allocation.PlanMaintenance(e.snap.MaintenanceRoads(), budget, e.allocationOptions()...)
	if err != nil {
		return allocation.MaintenancePlan{}, wrap("maintenance", err)
	}

	return plan, nil
}

// AllocateAll runs fleet scheduling and maintenance planning concurrently.
func (e *Engine) AllocateAll(ctx context.Context, buses, trains int, budget float64) (AllocationReport, error) {
	var rep AllocationReport
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		fleet, err := e.ScheduleFleet(buses, trains)
		rep.Fleet = fleet

		return err
	})
	eg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		plan, err := e.PlanMaintenance(budget)
		rep.Maintenance = plan

		return err
	})
	if err := eg.Wait(); err != nil {
		return AllocationReport{}, err
	}

	return rep, nil
}
