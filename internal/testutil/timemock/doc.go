// Package timemock contains generated mocks for the timing package interfaces.
package timemock

//go:generate mockgen -package timemock -destination scheduler.mock.go github.com/ghettovoice/progress/timing Scheduler
