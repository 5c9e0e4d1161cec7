package cron

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v6"
	cronv3 "github.com/robfig/cron/v3"

	"github.com/DhanushPillay/MailSpectre/config"
	cron_config "github.com/DhanushPillay/MailSpectre/internal/cron/config"
	"github.com/DhanushPillay/MailSpectre/internal/logger"
	"github.com/DhanushPillay/MailSpectre/internal/refdata"
	"github.com/DhanushPillay/MailSpectre/internal/repository"
	"github.com/DhanushPillay/MailSpectre/internal/tracing"
)

// CONSTANTS
const (
	// GroupRefData is the group for reference data jobs
	GroupRefData = "refdata"
	// GroupHistory is the group for validation history jobs
	GroupHistory = "history"
)

// LOCK MANAGEMENT
var jobLocks = struct {
	sync.Mutex
	locks map[string]*sync.Mutex
}{
	locks: map[string]*sync.Mutex{
		GroupRefData: new(sync.Mutex),
		GroupHistory: new(sync.Mutex),
	},
}

type CronManager struct {
	cfg      *config.Config
	log      logger.Logger
	cron     *cronv3.Cron
	stopCh   chan struct{}
	jobIDs   map[string]cronv3.EntryID
	refStore *refdata.Store
	records  repository.ValidationRecordRepository
}

// NewCronManager builds the scheduler for background jobs. records may
// be nil when history persistence is disabled.
func NewCronManager(cfg *config.Config, log logger.Logger, refStore *refdata.Store, records repository.ValidationRecordRepository) *CronManager {
	return &CronManager{
		cfg:      cfg,
		log:      log,
		stopCh:   make(chan struct{}),
		jobIDs:   make(map[string]cronv3.EntryID),
		refStore: refStore,
		records:  records,
	}
}

// Start initializes and starts the cron scheduler
func (cm *CronManager) Start() {
	cm.log.Info("Starting cron manager")
	cronOptions := []cronv3.Option{
		cronv3.WithSeconds(),
		cronv3.WithChain(
			cronv3.SkipIfStillRunning(cronv3.DefaultLogger),
			cronv3.Recover(cronv3.DefaultLogger),
		),
	}
	c := cronv3.New(cronOptions...)
	cm.registerJobs(c)
	c.Start()
	cm.cron = c
}

// Stop gracefully stops the cron manager
func (cm *CronManager) Stop() {
	if cm.cron != nil {
		cm.log.Info("Stopping cron manager")
		ctx := cm.cron.Stop()
		// Wait for jobs to finish
		<-ctx.Done()
	}
	close(cm.stopCh)
}

// registerJobs adds all cron jobs to the scheduler
func (cm *CronManager) registerJobs(c *cronv3.Cron) {
	var cronConfig cron_config.Config
	if err := env.Parse(&cronConfig); err != nil {
		cm.log.Fatalf("Failed to parse cron config from environment: %v", err)
	}

	// Register heartbeat job
	if cronConfig.CronScheduleHeartbeat != "" {
		hostname, _ := os.Hostname()
		id, err := c.AddFunc(cronConfig.CronScheduleHeartbeat, func() {
			defer tracing.RecoverAndLogToJaeger(cm.log)
			cm.log.Infof("Cron heartbeat from host: %s", hostname)
		})
		if err != nil {
			cm.log.Fatalf("Could not add heartbeat cron job: %v", err)
		}
		cm.jobIDs["heartbeat"] = id
		cm.log.Infof("Registered heartbeat job with schedule: %s", cronConfig.CronScheduleHeartbeat)
	}

	// Register reference data reload job
	if cronConfig.CronScheduleRefDataReload != "" {
		id, err := c.AddFunc(cronConfig.CronScheduleRefDataReload, func() {
			defer tracing.RecoverAndLogToJaeger(cm.log)
			jobLocks.locks[GroupRefData].Lock()
			defer jobLocks.locks[GroupRefData].Unlock()
			cm.reloadReferenceData()
		})
		if err != nil {
			cm.log.Fatalf("Could not add reference data reload cron job: %v", err)
		}
		cm.jobIDs["refdata_reload"] = id
		cm.log.Infof("Registered reference data reload job with schedule: %s", cronConfig.CronScheduleRefDataReload)
	}

	// Register history pruning job when persistence is enabled
	if cronConfig.CronSchedulePruneHistory != "" && cm.records != nil {
		retention := time.Duration(cronConfig.HistoryRetentionDays) * 24 * time.Hour
		id, err := c.AddFunc(cronConfig.CronSchedulePruneHistory, func() {
			defer tracing.RecoverAndLogToJaeger(cm.log)
			jobLocks.locks[GroupHistory].Lock()
			defer jobLocks.locks[GroupHistory].Unlock()
			cm.pruneValidationHistory(retention)
		})
		if err != nil {
			cm.log.Fatalf("Could not add history pruning cron job: %v", err)
		}
		cm.jobIDs["prune_history"] = id
		cm.log.Infof("Registered history pruning job with schedule: %s", cronConfig.CronSchedulePruneHistory)
	}
}

// reloadReferenceData loads a fresh snapshot and swaps it in atomically.
// On failure the previous snapshot stays active.
func (cm *CronManager) reloadReferenceData() {
	ctx := context.Background()

	span, _ := tracing.StartTracerSpan(ctx, "CronManager.reloadReferenceData")
	defer span.Finish()
	tracing.TagComponentCronJob(span)

	snapshot, err := refdata.Load(cm.cfg.RefDataConfig)
	if err != nil {
		tracing.TraceErr(span, err)
		cm.log.Errorf("Failed to reload reference data, keeping previous snapshot: %v", err)
		return
	}

	cm.refStore.Swap(snapshot)
	cm.log.Infof("Reloaded reference data: %d disposable domains, %d fraud emails",
		snapshot.DisposableDomainCount(), snapshot.FraudEmailCount())
}

func (cm *CronManager) pruneValidationHistory(retention time.Duration) {
	ctx := context.Background()

	span, ctx := tracing.StartTracerSpan(ctx, "CronManager.pruneValidationHistory")
	defer span.Finish()
	tracing.TagComponentCronJob(span)

	cutoff := time.Now().Add(-retention)
	deleted, err := cm.records.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		tracing.TraceErr(span, err)
		cm.log.Errorf("Failed to prune validation history: %v", err)
		return
	}

	if deleted > 0 {
		cm.log.Infof("Pruned %d validation records older than %s", deleted, cutoff.Format(time.RFC3339))
	}
}
