package llm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent is the outcome of one model invocation: which task, which
// model, how long it took, and the error code if it failed.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives a CallEvent after every model call, success or not.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver prints one line per call to w. Enabled via config when the
// user wants to see what the generator is doing.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] llm_call task=%s model=%s latency_ms=%d status=%s\n",
		time.Now().UTC().Format(time.RFC3339), event.Task, event.Model, event.LatencyMs, status)
}

// NoopObserver discards every event.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
