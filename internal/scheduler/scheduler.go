package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"TradeAdvisor/internal/collector"
	"TradeAdvisor/internal/model"
	"TradeAdvisor/internal/notifier"
	"TradeAdvisor/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic evaluation and report tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Symbols   []string
	Period    string
	Ctx       context.Context

	mu       sync.Mutex
	lastKind map[string]model.SignalKind
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier, rec recorder.Recorder, symbols []string, period string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  tn,
		Recorder:  rec,
		Symbols:   symbols,
		Period:    period,
		Ctx:       ctx,
		lastKind:  make(map[string]model.SignalKind),
	}
}

// RegisterAll registers the refresh and daily report tasks.
func (s *Scheduler) RegisterAll(refreshCron, reportCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	if _, err := s.Cron.AddFunc(reportCron, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunRefreshNow executes the refresh task immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

// refreshTask evaluates every tracked symbol, records the result, and
// alerts when a symbol's signal kind changes.
func (s *Scheduler) refreshTask() {
	for _, symbol := range s.Symbols {
		a := s.Collector.Analyze(symbol, s.Period)
		log.Printf("[INFO] %s: %s (%.0f%%) %s", symbol, a.Signal.Kind, a.Signal.Confidence, a.Signal.Reason)

		if err := s.Recorder.RecordSignal(recorder.SnapshotFromAnalysis(symbol, s.Period, a)); err != nil {
			log.Printf("[ERROR] record signal for %s: %v", symbol, err)
		}

		if s.kindChanged(symbol, a.Signal.Kind) {
			s.trySendSignal(a.Signal.Kind, notifier.FormatSignalReport(symbol, a))
		}
	}
}

// kindChanged updates the last seen kind and reports whether it differs.
// The first observation of a symbol counts as a change.
func (s *Scheduler) kindChanged(symbol string, kind model.SignalKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, seen := s.lastKind[symbol]
	s.lastKind[symbol] = kind
	return !seen || prev != kind
}

// reportTask sends the full summary regardless of signal changes.
func (s *Scheduler) reportTask() {
	log.Println("[INFO] running daily report")
	lines := make([]string, 0, len(s.Symbols))
	for _, symbol := range s.Symbols {
		a := s.Collector.Analyze(symbol, s.Period)
		lines = append(lines, notifier.FormatSummaryLine(symbol, a))
	}
	s.trySend(notifier.FormatDailyReport(lines))
}

const helpText = "Commands:\n• /signal [symbol] - full analysis now\n• /report - daily summary now\n• /status - last known signals"

// Commands builds the bot command registry backed by this scheduler.
func (s *Scheduler) Commands() *notifier.CommandMux {
	mux := notifier.NewCommandMux(helpText)
	mux.Handle("/signal", s.cmdSignal)
	mux.Handle("/report", func([]string) string {
		s.reportTask()
		return ""
	})
	mux.Handle("/status", func([]string) string {
		return s.statusText()
	})
	return mux
}

// cmdSignal analyzes the requested symbols (default: all tracked) and
// sends a full report for each.
func (s *Scheduler) cmdSignal(args []string) string {
	symbols := s.Symbols
	if len(args) > 0 {
		symbols = args
	}
	for _, symbol := range symbols {
		a := s.Collector.Analyze(symbol, s.Period)
		s.trySendSignal(a.Signal.Kind, notifier.FormatSignalReport(symbol, a))
	}
	return ""
}

func (s *Scheduler) statusText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lastKind) == 0 {
		return "No evaluations yet"
	}
	var b strings.Builder
	b.WriteString("Last known signals:\n")
	for _, symbol := range s.Symbols {
		if kind, ok := s.lastKind[symbol]; ok {
			b.WriteString(fmt.Sprintf("• %s: %s\n", symbol, kind))
		}
	}
	return b.String()
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}

func (s *Scheduler) trySendSignal(kind model.SignalKind, text string) {
	if err := s.Notifier.SendSignalWithRetry(s.Ctx, kind, text, 3); err != nil {
		log.Printf("[ERROR] send signal notification: %v", err)
	}
}
