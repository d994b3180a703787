// Package calendar renders events as an iCalendar feed.
package calendar

import (
	"eventsBoard/internal/models"
	"fmt"
	"github.com/emersion/go-ical"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	productID  = "-//eventsBoard//Events Feed//EN"
	dateLayout = "2006-01-02"

	emptyCalendar = "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:" + productID + "\r\n" +
		"CALSCALE:GREGORIAN\r\n" +
		"END:VCALENDAR\r\n"
)

// Encoder writes feeds. UIDs are "<event id>@<domain>".
type Encoder struct {
	domain string
	now    func() time.Time
}

func NewEncoder(domain string) *Encoder {
	if domain == "" {
		domain = "events-board"
	}
	return &Encoder{domain: domain, now: time.Now}
}

// Encode writes one all-day VEVENT per event. Events with an unparseable date are skipped
// and reported by id.
func (e *Encoder) Encode(w io.Writer, events []models.Event) (skipped []string, err error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")

	stamp := e.now().UTC()

	for _, ev := range events {
		comp, ok := e.component(ev, stamp)
		if !ok {
			skipped = append(skipped, ev.ID)
			continue
		}
		cal.Children = append(cal.Children, comp.Component)
	}

	// go-ical refuses a calendar without components.
	if len(cal.Children) == 0 {
		if _, err := io.WriteString(w, emptyCalendar); err != nil {
			return skipped, fmt.Errorf("exporter.calendar.Encode: %w", err)
		}
		return skipped, nil
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return skipped, fmt.Errorf("exporter.calendar.Encode: %w", err)
	}

	return skipped, nil
}

func (e *Encoder) component(ev models.Event, stamp time.Time) (*ical.Event, bool) {
	start, err := time.Parse(dateLayout, ev.Date)
	if err != nil {
		return nil, false
	}

	// DTEND of an all-day event is exclusive.
	end := start
	if ev.EndDate != "" {
		if t, err := time.Parse(dateLayout, ev.EndDate); err == nil && !t.Before(start) {
			end = t
		}
	}
	end = end.AddDate(0, 0, 1)

	out := ical.NewEvent()
	out.Props.SetText(ical.PropUID, ev.ID+"@"+e.domain)
	out.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	out.Props.SetDate(ical.PropDateTimeStart, start)
	out.Props.SetDate(ical.PropDateTimeEnd, end)
	out.Props.SetText(ical.PropSummary, ev.Title)

	if ev.Description != "" {
		out.Props.SetText(ical.PropDescription, ev.Description)
	}
	if ev.Category != "" {
		out.Props.SetText(ical.PropCategories, ev.Category)
	}
	if loc := location(ev.Location); loc != "" {
		out.Props.SetText(ical.PropLocation, loc)
	}
	if ev.Location.Lat != 0 || ev.Location.Lng != 0 {
		geo := ical.NewProp(ical.PropGeo)
		geo.Value = strconv.FormatFloat(ev.Location.Lat, 'f', -1, 64) + ";" +
			strconv.FormatFloat(ev.Location.Lng, 'f', -1, 64)
		out.Props.Set(geo)
	}
	if u, err := url.Parse(ev.Link); err == nil && u.Scheme != "" {
		out.Props.SetURI(ical.PropURL, u)
	}
	if ev.Organizer != "" {
		org := ical.NewProp(ical.PropOrganizer)
		org.Value = "mailto:noreply@" + e.domain
		org.Params.Set(ical.ParamCommonName, ev.Organizer)
		out.Props.Set(org)
	}
	if ev.Status == models.StatusApproved {
		out.Props.SetText(ical.PropStatus, "CONFIRMED")
	} else {
		out.Props.SetText(ical.PropStatus, "TENTATIVE")
	}

	return out, true
}

func location(l models.Location) string {
	parts := make([]string, 0, 2)
	for _, s := range []string{l.Name, l.Address} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
