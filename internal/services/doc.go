// Package services contains the application services that sit between the
// HTTP transport and the domain packages. ScheduleService owns timetable
// ingestion and session materialization; HealthService reports process
// status.
package services
