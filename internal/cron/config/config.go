package cron_config

type Config struct {
	// Heartbeat check, every minute
	CronScheduleHeartbeat string `env:"CRON_SCHEDULE_HEARTBEAT" envDefault:"0 * * * * *"`
	// Reference data reload, every hour
	CronScheduleRefDataReload string `env:"CRON_SCHEDULE_REFDATA_RELOAD" envDefault:"0 0 * * * *"`
	// Validation history pruning, daily at midnight
	CronSchedulePruneHistory string `env:"CRON_SCHEDULE_PRUNE_HISTORY" envDefault:"0 0 0 * * *"`
	// Records older than this many days are pruned
	HistoryRetentionDays int `env:"HISTORY_RETENTION_DAYS" envDefault:"90"`
}
