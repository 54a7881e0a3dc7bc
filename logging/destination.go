package logging

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/s4mli/farola/logging/filter"
	"github.com/s4mli/farola/logging/format"
	"github.com/s4mli/farola/logging/model"
)

var lastId uint64

// Destination pairs a filter registry with a formatter and hands every
// rendered line to one sink. Lines go through a single emit worker per
// destination so concurrent callers never interleave mid message.
type Destination struct {
	Id       uint64
	registry *filter.Registry
	config   format.Config
	dates    model.DateFormatter
	sink     model.Sink
	lineCh   chan string
	done     chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

func NewDestination(min model.Level, c format.Config, d model.DateFormatter,
	s model.Sink) *Destination {
	dest := &Destination{
		Id:       atomic.AddUint64(&lastId, 1),
		registry: filter.NewRegistry(min),
		config:   c,
		dates:    d,
		sink:     s,
		lineCh:   make(chan string, 1<<10),
		done:     make(chan struct{}),
	}
	dest.wg.Add(1)
	go dest.emitLoop()
	return dest
}

func (d *Destination) Name() string { return fmt.Sprintf("destination(%05d)", d.Id) }

// AddRule appends a scoped override to the filter registry.
func (d *Destination) AddRule(min model.Level, path, function string) {
	d.registry.Append(min, path, function)
}

func (d *Destination) ShouldLog(lvl model.Level, path, function string) bool {
	return d.registry.ShouldLog(lvl, path, function)
}

// Format renders a record against this destination's config, stamping it
// with the current instant.
func (d *Destination) Format(r model.Record) string {
	return format.Render(r, d.dates.Format(d.config.DateLayout, time.Now()), d.config)
}

// Log filters, renders and queues one record. A full queue drops the line
// rather than blocking the caller. Reports whether the line was queued.
func (d *Destination) Log(r model.Record) bool {
	if !d.registry.ShouldLog(r.Level, r.SourcePath, r.FunctionName) {
		return false
	}
	select {
	case d.lineCh <- d.Format(r):
		return true
	default:
		return false
	}
}

func (d *Destination) emitLoop() {
	defer d.wg.Done()
	for {
		select {
		case line := <-d.lineCh:
			d.sink.Emit(line)
		case <-d.done:
			for {
				select {
				case line := <-d.lineCh:
					d.sink.Emit(line)
				default:
					return
				}
			}
		}
	}
}

// Stop drains queued lines and ends the emit worker.
func (d *Destination) Stop() {
	d.once.Do(func() {
		close(d.done)
		d.wg.Wait()
	})
}
