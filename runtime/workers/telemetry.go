package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"readroom/runtime"

	"github.com/shirou/gopsutil/mem"
	"github.com/shirou/gopsutil/process"
)

// TelemetryWorker logs session and process health on a fixed interval:
// session count, live connections, and the process RSS/CPU footprint.
type TelemetryWorker struct {
	log            *slog.Logger
	registry       *runtime.Registry
	metricInterval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, registry *runtime.Registry,
	metricInterval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{
		log:            log,
		registry:       registry,
		metricInterval: metricInterval,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.report(p)
		}
	}
}

func (w *TelemetryWorker) report(p *process.Process) {
	sessions := w.registry.Snapshot()
	connections := 0
	participants := 0
	for _, s := range sessions {
		connections += s.Connections
		participants += len(s.Participants)
	}

	attrs := []any{
		"sessions", len(sessions),
		"connections", connections,
		"participants", participants,
	}

	if memInfo, err := p.MemoryInfo(); err == nil {
		attrs = append(attrs, "rss_bytes", memInfo.RSS)
	}
	if cpuPercent, err := p.CPUPercent(); err == nil {
		attrs = append(attrs, "cpu_percent", cpuPercent)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		attrs = append(attrs, "host_mem_used_percent", vm.UsedPercent)
	}

	w.log.Info("Telemetry", attrs...)
}
