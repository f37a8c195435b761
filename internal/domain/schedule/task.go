// Package schedule holds persisted periodic tasks and their cron schedules.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"cargo-consolidation/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// Task names with built-in handlers.
const (
	TaskCheckMilestones = "check_milestones"
	TaskCheckDispatch   = "check_dispatch"
)

// Defaults are the schedules a fresh deployment starts with.
var Defaults = map[string]string{
	TaskCheckMilestones: "@hourly",
	TaskCheckDispatch:   "*/15 * * * *",
}

var ErrInvalidSchedule = errors.New("schedule must be a five-field cron expression or a descriptor such as @hourly")

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

type RunStatus string

const (
	RunNever   RunStatus = ""
	RunSuccess RunStatus = "success"
	RunFailed  RunStatus = "failed"
)

type Task struct {
	Name       string
	Schedule   string
	Enabled    bool
	LastRunAt  *time.Time
	NextRunAt  time.Time
	LastStatus RunStatus
	LastError  string
}

func ParseSchedule(expr string) (cron.Schedule, error) {
	s, err := parser.Parse(expr)
	if err != nil {
		return nil, errs.Field("schedule", fmt.Errorf("%w: %v", ErrInvalidSchedule, err))
	}
	return s, nil
}

// Next is the first activation strictly after from.
func Next(expr string, from time.Time) (time.Time, error) {
	s, err := ParseSchedule(expr)
	if err != nil {
		return time.Time{}, err
	}
	return s.Next(from), nil
}

func NewTask(name, expr string, now time.Time) (*Task, error) {
	next, err := Next(expr, now)
	if err != nil {
		return nil, err
	}
	return &Task{Name: name, Schedule: expr, Enabled: true, NextRunAt: next}, nil
}

func (t *Task) IsDue(now time.Time) bool {
	return t.Enabled && !t.NextRunAt.After(now)
}

// Reschedule changes the cron expression and recomputes the next run from now.
func (t *Task) Reschedule(expr string, now time.Time) error {
	next, err := Next(expr, now)
	if err != nil {
		return err
	}
	t.Schedule = expr
	t.NextRunAt = next
	return nil
}

// Complete records a run that started at startedAt.
func (t *Task) Complete(startedAt time.Time, runErr error) error {
	next, err := Next(t.Schedule, startedAt)
	if err != nil {
		return err
	}
	t.LastRunAt = &startedAt
	t.NextRunAt = next
	t.LastStatus = RunSuccess
	t.LastError = ""
	if runErr != nil {
		t.LastStatus = RunFailed
		t.LastError = runErr.Error()
	}
	return nil
}
