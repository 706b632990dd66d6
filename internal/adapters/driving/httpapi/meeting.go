package httpapi

import (
	"github.com/gofiber/fiber/v3"

	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driving"
	"github.com/archeteam/workspaced/internal/logger"
)

// MeetingHandler handles calendar and event routes.
type MeetingHandler struct {
	calendar driving.CalendarOps
}

// NewMeetingHandler creates a new meeting handler.
func NewMeetingHandler(calendar driving.CalendarOps) *MeetingHandler {
	return &MeetingHandler{calendar: calendar}
}

// Register sets up meeting routes.
func (h *MeetingHandler) Register(api fiber.Router) {
	meeting := api.Group("/meeting")
	meeting.Post("/create_event", h.CreateEvent)
	meeting.Post("/delete_event", h.DeleteEvent)
	meeting.Post("/create_calendar", h.CreateCalendar)
	meeting.Post("/delete_calendar", h.DeleteCalendar)
	meeting.Post("/get_calendar_id", h.GetCalendarID)
}

type createEventRequest struct {
	Summary    string   `json:"summary"`
	Attendees  []string `json:"attendees"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Timezone   string   `json:"timezone"`
	CalendarID string   `json:"calendar_id"`
	Location   string   `json:"location"`
}

// CreateEvent creates an event; an online location (the default) gets a
// meeting conference attached.
func (h *MeetingHandler) CreateEvent(c fiber.Ctx) error {
	var req createEventRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Summary == "" {
		return badRequest(c, "summary is required")
	}
	if req.Start == "" || req.End == "" {
		return badRequest(c, "start and end are required")
	}

	logger.Info("create event request: summary=%q calendar=%s", req.Summary, req.CalendarID)

	ev := domain.EventDetails{
		Summary:   req.Summary,
		Attendees: req.Attendees,
		Start:     req.Start,
		End:       req.End,
		Timezone:  req.Timezone,
		Location:  req.Location,
	}
	if err := h.calendar.CreateEvent(c.Context(), req.CalendarID, ev); err != nil {
		logger.Error("create event: %v", err)
		return fail(c, err)
	}
	return ok(c)
}

type eventRequest struct {
	Summary    string `json:"summary"`
	CalendarID string `json:"calendar_id"`
}

// DeleteEvent removes the first event matching the summary.
func (h *MeetingHandler) DeleteEvent(c fiber.Ctx) error {
	var req eventRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Summary == "" {
		return badRequest(c, "summary is required")
	}

	logger.Info("delete event request: summary=%q calendar=%s", req.Summary, req.CalendarID)

	if err := h.calendar.DeleteEvent(c.Context(), req.CalendarID, req.Summary); err != nil {
		logger.Error("delete event: %v", err)
		return fail(c, err)
	}
	return ok(c)
}

type createCalendarRequest struct {
	Summary  string `json:"summary"`
	TimeZone string `json:"time_zone"`
}

// CreateCalendar creates a new calendar.
func (h *MeetingHandler) CreateCalendar(c fiber.Ctx) error {
	var req createCalendarRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Summary == "" {
		return badRequest(c, "summary is required")
	}

	logger.Info("create calendar request: summary=%q", req.Summary)

	cal := domain.CalendarDetails{Summary: req.Summary, Timezone: req.TimeZone}
	if err := h.calendar.CreateCalendar(c.Context(), cal); err != nil {
		logger.Error("create calendar: %v", err)
		return fail(c, err)
	}
	return ok(c)
}

type calendarRequest struct {
	Summary string `json:"summary"`
}

// DeleteCalendar removes the first calendar matching the summary.
func (h *MeetingHandler) DeleteCalendar(c fiber.Ctx) error {
	var req calendarRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Summary == "" {
		return badRequest(c, "summary is required")
	}

	logger.Info("delete calendar request: summary=%q", req.Summary)

	if err := h.calendar.DeleteCalendar(c.Context(), req.Summary); err != nil {
		logger.Error("delete calendar: %v", err)
		return fail(c, err)
	}
	return ok(c)
}

// GetCalendarID resolves a calendar summary to its identifier.
func (h *MeetingHandler) GetCalendarID(c fiber.Ctx) error {
	var req calendarRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Summary == "" {
		return badRequest(c, "summary is required")
	}

	logger.Info("get calendar id request: summary=%q", req.Summary)

	id, err := h.calendar.LookupCalendarID(c.Context(), req.Summary)
	if err != nil {
		logger.Error("lookup calendar id: %v", err)
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"calendar_id": id})
}
