package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"golang-trade-pilot/internal/alert/config"
	"golang-trade-pilot/internal/dto"
	"golang-trade-pilot/internal/repository"
	"golang-trade-pilot/internal/service"
	"golang-trade-pilot/pkg/logger"
	"golang-trade-pilot/pkg/telegram"
	"golang-trade-pilot/pkg/utils"

	"github.com/robfig/cron/v3"
)

// RunReport summarises one monitoring pass.
type RunReport struct {
	Monitored int
	Failed    int
	Triggered int
	Sent      int
}

// AlertService polls active plans on a cron schedule and notifies triggered exits.
// It only reads plans; closing a plan is left to the user.
type AlertService interface {
	Start(ctx context.Context) error
	Stop()
	RunOnce(ctx context.Context) (RunReport, error)
}

type alertService struct {
	cfg        config.Alert
	log        *logger.Logger
	monitor    service.MonitorService
	alertState repository.AlertStateRepository
	notifier   telegram.Notifier
	cron       *cron.Cron
	mu         sync.Mutex
	now        func() time.Time
}

func NewAlertService(cfg config.Alert, log *logger.Logger,
	monitor service.MonitorService,
	alertState repository.AlertStateRepository,
	notifier telegram.Notifier) AlertService {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		loc = time.Local
	}
	return &alertService{
		cfg:        cfg,
		log:        log,
		monitor:    monitor,
		alertState: alertState,
		notifier:   notifier,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow|cron.Descriptor)),
		),
		now: utils.TimeNowCST,
	}
}

// Start registers the monitoring pass on the configured schedule and returns immediately.
func (s *alertService) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		s.runScheduled(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid alert schedule %q: %w", s.cfg.Schedule, err)
	}
	s.cron.Start()
	s.log.Info("Alert scheduler started", logger.StringField("schedule", s.cfg.Schedule))

	if s.cfg.RunOnStart {
		utils.GoSafe(func() { s.runScheduled(ctx) })
	}
	return nil
}

// Stop waits for a running pass to finish.
func (s *alertService) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("Alert scheduler stopped")
}

func (s *alertService) runScheduled(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	// a slow pass must not overlap with the next tick
	if !s.mu.TryLock() {
		s.log.Warn("Previous alert run still in progress, skipping")
		return
	}
	defer s.mu.Unlock()

	runCtx, cancel := context.WithTimeout(ctx, s.cfg.RunTimeout)
	defer cancel()

	report, err := s.RunOnce(runCtx)
	if err != nil {
		s.log.Error("Alert run failed", logger.ErrorField(err))
		if sendErr := s.notifier.SendMessage(telegram.FormatErrorAlertMessage(s.now(), "alert_run", err.Error(), "")); sendErr != nil {
			s.log.Error("Failed to send error alert", logger.ErrorField(sendErr))
		}
		return
	}
	s.log.Info("Alert run finished",
		logger.IntField("monitored", report.Monitored),
		logger.IntField("failed", report.Failed),
		logger.IntField("triggered", report.Triggered),
		logger.IntField("sent", report.Sent))
}

// RunOnce monitors every active plan and sends at most one alert per plan and branch until the
// price moves by the resend threshold.
func (s *alertService) RunOnce(ctx context.Context) (RunReport, error) {
	var report RunReport

	items, err := s.monitor.MonitorActive(ctx)
	if err != nil {
		return report, err
	}

	for _, item := range items {
		if item.Result == nil {
			report.Failed++
			s.log.WarnContext(ctx, "Plan could not be monitored",
				logger.Field("plan_id", item.PlanID),
				logger.StringField("stock_code", item.StockCode),
				logger.StringField("error_code", item.ErrorCode),
				logger.StringField("error", item.Error))
			continue
		}
		report.Monitored++

		for _, branch := range []struct {
			alertType telegram.AlertType
			result    dto.BranchResult
		}{
			{telegram.StopLoss, item.Result.StopLoss},
			{telegram.TakeProfit, item.Result.TakeProfit},
		} {
			if !branch.result.Triggered {
				continue
			}
			report.Triggered++

			sent, err := s.alert(ctx, branch.alertType, item.Result)
			if err != nil {
				s.log.ErrorContext(ctx, "Failed to send plan alert",
					logger.Field("plan_id", item.PlanID),
					logger.StringField("alert_type", string(branch.alertType)),
					logger.ErrorField(err))
				continue
			}
			if sent {
				report.Sent++
			}
		}
	}
	return report, nil
}

func (s *alertService) alert(ctx context.Context, alertType telegram.AlertType, result *dto.MonitorResult) (bool, error) {
	branch := string(alertType)
	ok, err := s.shouldTriggerAlert(ctx, branch, result)
	if err != nil || !ok {
		return false, err
	}

	now := s.now()
	if err := s.notifier.SendMessage(telegram.FormatPlanAlertForTelegram(alertType, result, now)); err != nil {
		return false, err
	}

	if err := s.alertState.Publish(ctx, repository.PlanAlertEvent{
		PlanID:       result.PlanID,
		StockCode:    result.StockCode,
		Branch:       branch,
		CurrentPrice: result.CurrentPrice,
		PnLPct:       result.PnLPct,
		TriggeredAt:  now,
	}); err != nil {
		s.log.WarnContext(ctx, "Failed to publish plan alert event", logger.Field("plan_id", result.PlanID), logger.ErrorField(err))
	}

	return true, s.alertState.SetLastAlertPrice(ctx, branch, result.PlanID, result.CurrentPrice, s.cfg.CacheDuration)
}

func (s *alertService) shouldTriggerAlert(ctx context.Context, branch string, result *dto.MonitorResult) (bool, error) {
	lastAlertPrice, found, err := s.alertState.GetLastAlertPrice(ctx, branch, result.PlanID)
	if err != nil {
		return false, err
	}
	if !found || lastAlertPrice <= 0 {
		return true, nil
	}

	percentChange := math.Abs(result.CurrentPrice-lastAlertPrice) / lastAlertPrice * 100
	if percentChange >= s.cfg.ResendThresholdPercent {
		s.log.DebugContext(ctx, "Trigger resend alert",
			logger.Field("plan_id", result.PlanID),
			logger.FloatField("current_price", result.CurrentPrice),
			logger.FloatField("last_alert_price", lastAlertPrice))
		return true, nil
	}

	s.log.DebugContext(ctx, "Skip resend alert",
		logger.Field("plan_id", result.PlanID),
		logger.FloatField("current_price", result.CurrentPrice),
		logger.FloatField("last_alert_price", lastAlertPrice))
	return false, nil
}
