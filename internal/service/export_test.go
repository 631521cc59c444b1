package service

import "time"

// SetClock подменяет часы сервиса в тестах
func SetClock(s IncidentService, now func() time.Time) {
	s.(*incidentService).now = now
}

// SetTimeline подменяет расписание автоматических переходов
func SetTimeline(s IncidentService, timeline []Step) {
	s.(*incidentService).timeline = timeline
}
