package calendarSvc

import (
	"context"
	"time"

	"fixify/scheduling"

	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GoogleCalendar reads busy intervals from and writes appointment events to
// one Google Calendar. It implements scheduling.BusySource.
type GoogleCalendar struct {
	svc        *calendar.Service
	calendarID string
	timezone   string
	logger     *zap.Logger
}

// NewGoogleCalendar builds a calendar client from a service-account
// credentials file.
func NewGoogleCalendar(ctx context.Context, credentialsFile, calendarID, timezone string, logger *zap.Logger) (*GoogleCalendar, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, scheduling.NewConfigurationError("failed to create calendar service", err)
	}
	if calendarID == "" {
		return nil, scheduling.NewConfigurationError("calendar ID is not configured", nil)
	}
	return &GoogleCalendar{
		svc:        svc,
		calendarID: calendarID,
		timezone:   timezone,
		logger:     logger,
	}, nil
}

// BusyIntervals queries the FreeBusy API for every busy period overlapping
// [startUTC, endUTC).
func (g *GoogleCalendar) BusyIntervals(ctx context.Context, startUTC, endUTC time.Time) ([]scheduling.Interval, error) {
	req := &calendar.FreeBusyRequest{
		TimeMin: startUTC.Format(time.RFC3339),
		TimeMax: endUTC.Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: g.calendarID}},
	}

	resp, err := g.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, mapGoogleError("freebusy query failed", err)
	}

	cal, ok := resp.Calendars[g.calendarID]
	if !ok {
		return nil, scheduling.NewRemoteError(scheduling.CodeNotFound,
			"calendar missing from freebusy response", nil)
	}
	if len(cal.Errors) > 0 {
		g.logger.Warn("freebusy response reported calendar errors",
			zap.String("calendarID", g.calendarID),
			zap.String("reason", cal.Errors[0].Reason))
		return nil, scheduling.NewRemoteError(scheduling.CodeRemoteUnavailable,
			"freebusy response reported calendar error: "+cal.Errors[0].Reason, nil)
	}

	intervals := make([]scheduling.Interval, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, scheduling.NewRemoteError(scheduling.CodeRemoteUnavailable,
				"malformed busy period start", err)
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, scheduling.NewRemoteError(scheduling.CodeRemoteUnavailable,
				"malformed busy period end", err)
		}
		intervals = append(intervals, scheduling.Interval{Start: start.UTC(), End: end.UTC()})
	}
	return intervals, nil
}

// InsertEvent writes an appointment to the calendar and returns the event ID.
// Instants are sent as UTC RFC3339 with the business timezone attached.
func (g *GoogleCalendar) InsertEvent(ctx context.Context, summary, description string, slot scheduling.Interval) (string, error) {
	event := &calendar.Event{
		Summary:     summary,
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: slot.Start.Format(time.RFC3339),
			TimeZone: g.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: slot.End.Format(time.RFC3339),
			TimeZone: g.timezone,
		},
	}

	created, err := g.svc.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", mapGoogleError("event insert failed", err)
	}
	return created.Id, nil
}

// PatchEvent moves an existing event to a new slot.
func (g *GoogleCalendar) PatchEvent(ctx context.Context, eventID string, slot scheduling.Interval) error {
	patch := &calendar.Event{
		Start: &calendar.EventDateTime{
			DateTime: slot.Start.Format(time.RFC3339),
			TimeZone: g.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: slot.End.Format(time.RFC3339),
			TimeZone: g.timezone,
		},
	}
	_, err := g.svc.Events.Patch(g.calendarID, eventID, patch).Context(ctx).Do()
	if err != nil {
		return mapGoogleError("event patch failed", err)
	}
	return nil
}

// DeleteEvent removes an event from the calendar.
func (g *GoogleCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	if err := g.svc.Events.Delete(g.calendarID, eventID).Context(ctx).Do(); err != nil {
		return mapGoogleError("event delete failed", err)
	}
	return nil
}

// mapGoogleError translates googleapi failures into scheduling error codes.
func mapGoogleError(msg string, err error) error {
	if apiErr, ok := err.(*googleapi.Error); ok {
		switch apiErr.Code {
		case 401, 403:
			return scheduling.NewRemoteError(scheduling.CodeUnauthorized, msg, err)
		case 404:
			return scheduling.NewRemoteError(scheduling.CodeNotFound, msg, err)
		}
	}
	return scheduling.NewRemoteError(scheduling.CodeRemoteUnavailable, msg, err)
}
