package holidays

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
)

// holidayEvent is one VEVENT of a feed, recurrence unexpanded.
type holidayEvent struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	AllDay      bool
	RRule       string
}

// parseFeed reads the VEVENTs out of an ICS document. A malformed event is
// skipped; a malformed document is an error.
func (s *Service) parseFeed(url string, body []byte) ([]holidayEvent, error) {
	if len(body) == 0 {
		return nil, errors.New("empty feed body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	var events []holidayEvent
	for _, component := range cal.Events() {
		event, err := parseEvent(component)
		if err != nil {
			s.logger.Warnw("skipping malformed feed event", "url", url, "error", err)
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

func parseEvent(component *ical.VEvent) (holidayEvent, error) {
	var event holidayEvent

	if p := component.GetProperty(ical.ComponentPropertySummary); p != nil {
		event.Summary = p.Value
	}
	if event.Summary == "" {
		return event, errors.New("missing summary")
	}
	if p := component.GetProperty(ical.ComponentPropertyDescription); p != nil {
		event.Description = p.Value
	}

	start, err := component.GetStartAt()
	if err != nil {
		return event, fmt.Errorf("get start: %w", err)
	}
	event.Start = start

	if end, err := component.GetEndAt(); err == nil {
		event.End = end
	} else {
		event.End = start
	}

	// Holiday feeds publish date-only entries; VALUE=DATE or a value with no
	// time part marks an all-day event.
	if p := component.GetProperty(ical.ComponentPropertyDtStart); p != nil {
		if values, ok := p.ICalParameters["VALUE"]; ok && len(values) > 0 && strings.EqualFold(values[0], "DATE") {
			event.AllDay = true
		}
		if !strings.Contains(p.Value, "T") {
			event.AllDay = true
		}
	}

	if p := component.GetProperty(ical.ComponentPropertyRrule); p != nil {
		event.RRule = p.Value
	}

	return event, nil
}
