// Package jobs runs the periodic background work of the service on cron
// schedules: evicting expired cache entries and reporting parcels that have
// waited too long at the front desk.
package jobs
