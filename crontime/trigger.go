package crontime

import (
	"fmt"
	"sync"
	"time"
)

// Trigger represents the mechanism by which jobs are scheduled.
type Trigger interface {
	// NextFireTime returns the next time at which the Trigger is scheduled
	// to fire, as Unix nanoseconds.
	NextFireTime(prev int64) (int64, error)

	// Description returns the description of the Trigger.
	Description() string
}

// triggerHorizon bounds the search for the next fire time. The Gregorian
// calendar repeats every 400 years, so a pattern without a match in this
// window never matches.
const triggerHorizon = 400

// CronTrigger implements the Trigger interface on top of a CronTime.
// It is safe for concurrent use.
type CronTrigger struct {
	mtx      sync.Mutex
	cronTime *CronTime
	start    time.Time
	hasStart bool
	end      time.Time
	hasEnd   bool
}

var _ Trigger = (*CronTrigger)(nil)

// NewCronTrigger returns a new CronTrigger for the pattern. A start or end
// set through the options bounds the fire times the trigger returns.
func NewCronTrigger(pattern string, opts ...Option) (*CronTrigger, error) {
	cronTime, err := New(pattern, opts...)
	if err != nil {
		return nil, err
	}
	trigger := &CronTrigger{cronTime: cronTime}
	trigger.start, trigger.hasStart = cronTime.Start()
	trigger.end, trigger.hasEnd = cronTime.End()
	return trigger, nil
}

// NextFireTime returns the first instant matching the pattern strictly
// after prev, which is given in Unix nanoseconds.
func (ct *CronTrigger) NextFireTime(prev int64) (int64, error) {
	ct.mtx.Lock()
	defer ct.mtx.Unlock()

	from := time.Unix(0, prev).Truncate(time.Second).Add(time.Second)
	if ct.hasStart && ct.start.After(from) {
		from = ct.start
	}
	until := from.AddDate(triggerHorizon, 0, 0)
	if ct.hasEnd && ct.end.Before(until) {
		until = ct.end
	}

	if err := ct.cronTime.SetStart(from); err != nil {
		return 0, err
	}
	if err := ct.cronTime.SetEnd(until); err != nil {
		return 0, err
	}
	ct.cronTime.Rewind()

	next, ok := ct.cronTime.Next()
	if !ok {
		return 0, fmt.Errorf("%w: no match for %q until %s",
			ErrTriggerExpired, ct.cronTime.Pattern(), until.Format(time.RFC3339))
	}
	return next.UnixNano(), nil
}

// Description returns the description of the trigger.
func (ct *CronTrigger) Description() string {
	return fmt.Sprintf("CronTrigger::%s", ct.cronTime)
}
