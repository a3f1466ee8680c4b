package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"projecttracker/internal/service"
)

// Deps groups what the routes read from.
type Deps struct {
	DB       *sql.DB
	Parts    PartLookup
	Tasks    TaskLookup
	Members  MemberLookup
	Users    MinorLookup
	Meetings MeetingLookup
	Reports  service.InventoryService
	Location *time.Location
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	now := func() time.Time { return time.Now().In(loc) }

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	app.Get("/parts/low-stock", LowStockParts(d.Parts))
	app.Get("/parts/critically-low", CriticallyLowParts(d.Parts))
	app.Get("/parts/by-number/:partNumber", PartByNumber(d.Parts))

	app.Get("/tasks/overdue", OverdueTasks(d.Tasks, now))
	app.Get("/tasks/due-soon", DueSoonTasks(d.Tasks, now))

	app.Get("/projects/:id/members", ProjectMembers(d.Members))
	app.Get("/users/minors", MinorUsers(d.Users))
	app.Get("/meetings/overlapping", OverlappingMeetings(d.Meetings, loc))

	app.Post("/reports/inventory", ExportInventoryReport(d.Reports))
	app.Get("/reports/inventory", ListInventoryReports(d.Reports))
}
