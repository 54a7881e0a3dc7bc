package cleaner

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/s4mli/farola/common"
	"github.com/sirupsen/logrus"
)

// Cleanable is anything owning a resource that must be released on
// shutdown: destinations, file/db/rabbit sinks.
type Cleanable interface {
	Stop()
	Name() string
}

var (
	resourcesMu sync.Mutex
	resources   []Cleanable
)

func Register(r ...Cleanable) {
	resourcesMu.Lock()
	defer resourcesMu.Unlock()
	resources = append(resources, r...)
}

// Run blocks until the context is cancelled or a signal arrives, then
// stops every registered resource in reverse registration order, so
// destinations drain before the sinks under them close.
func Run(ctx context.Context, logger logrus.FieldLogger) {
	snapshot := func() []Cleanable {
		resourcesMu.Lock()
		defer resourcesMu.Unlock()
		taken := resources
		resources = nil
		return taken
	}

	done := make(chan struct{})
	cleanup := func(reason string) {
		taken := snapshot()
		for i := range taken {
			r := taken[len(taken)-1-i]
			logger.Warnf("( %s ) terminated, %s", r.Name(), reason)
			r.Stop()
		}
		close(done)
	}

	common.TerminateIf(ctx,
		func() {
			cleanup("cancel")
		},
		func(s os.Signal) {
			cleanup(fmt.Sprintf("signal %+v", s))
		})
	<-done
}
