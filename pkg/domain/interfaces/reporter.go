package interfaces

import "github.com/m-mizutani/labelmesh/pkg/domain/model"

// EventSink receives progress events from a reconciliation run. The
// sink only renders; error counting is done by the processor.
type EventSink interface {
	Event(ev *model.SyncEvent)
	Summary(result *model.SyncResult)
}
