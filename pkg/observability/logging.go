package observability

import (
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements [ExportHooks] and [DecoratorHooks] on top of a
// charmbracelet logger. Export lifecycle events log at info level, per-value
// events (singleton hits, annotations) at debug level so they stay quiet
// unless verbose logging is on.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks creates hooks writing to the given logger. A nil logger uses
// the package default.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger}
}

// Install registers the hooks for both event categories.
func (h *LogHooks) Install() {
	SetExportHooks(h)
	SetDecoratorHooks(h)
}

func (h *LogHooks) OnExportStart(rootType string) {
	h.Logger.Debug("export start", "root", rootType)
}

func (h *LogHooks) OnExportComplete(rootType string, atoms, relations int, duration time.Duration, err error) {
	if err != nil {
		h.Logger.Error("export failed", "root", rootType, "duration", duration, "err", err)
		return
	}
	h.Logger.Info("export complete", "root", rootType, "atoms", atoms, "relations", relations, "duration", duration)
}

func (h *LogHooks) OnSingletonHit(atomType, label string) {
	h.Logger.Debug("singleton reused", "type", atomType, "label", label)
}

func (h *LogHooks) OnRegister(typeName string) {
	h.Logger.Debug("decorators registered", "type", typeName)
}

func (h *LogHooks) OnAnnotate(kind string) {
	h.Logger.Debug("instance annotated", "kind", kind)
}

func (h *LogHooks) OnAnnotateIgnored(kind string) {
	h.Logger.Warn("unknown annotation kind ignored", "kind", kind)
}

func (h *LogHooks) OnCollect(typeName string) {
	h.Logger.Debug("decorators collected", "type", typeName)
}
