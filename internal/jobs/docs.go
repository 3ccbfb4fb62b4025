// Package jobs provides scheduled background tasks.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. BacklogReportJob - Periodically logs how many orders nobody has claimed
// yet and how old the oldest one is.
//
// Orders never expire and are never swept: the report is strictly read-only,
// it just keeps a quietly growing backlog from going unnoticed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(backlogHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
