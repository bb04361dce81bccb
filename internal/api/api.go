package api

import (
	"context"
	"net/http"
	"time"

	"github.com/calendar-todo/backend/internal/business/events"
	"github.com/calendar-todo/backend/internal/database"
	"github.com/calendar-todo/backend/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger

	eventsService   eventsService
	tasksService    tasksService
	holidaysService holidaysService

	db         database.PGX
	categories categoriesRepository
	notes      notesRepository
	search     searchRepository
}

type eventsService interface {
	CreateEvent(ctx context.Context, info *events.EventCreateInput) (*model.Event, error)
	GetEvent(ctx context.Context, id int64) (*model.Event, error)
	UpdateEvent(ctx context.Context, event *model.Event) error
	DeleteEvent(ctx context.Context, id int64) error
	QueryRange(ctx context.Context, filter model.EventsFilter) (*events.RangeResult, error)
	ExpandRecurringEvents(ctx context.Context, eventID int64, from, to time.Time) ([]*model.Occurrence, error)
	GetEventExceptions(ctx context.Context, eventID int64) ([]*model.EventException, error)
	CancelOccurrence(ctx context.Context, eventID int64, originalDate time.Time) error
	UpdateOccurrence(ctx context.Context, eventID int64, originalDate time.Time, update *events.OccurrenceUpdate) error
	RestoreOccurrence(ctx context.Context, eventID int64, originalDate time.Time) error
	CreateRule(ctx context.Context, info *model.RecurringRuleCreate) (*model.RecurringRule, error)
	GetRule(ctx context.Context, id int64) (*model.RecurringRule, error)
	UpdateRule(ctx context.Context, rule *model.RecurringRule) error
	DeleteRule(ctx context.Context, id int64) error
}

type tasksService interface {
	CreateTask(ctx context.Context, info *model.TaskCreate) (*model.Task, error)
	GetTask(ctx context.Context, id int64) (*model.Task, error)
	GetTasks(ctx context.Context, filter model.TasksFilter) ([]*model.Task, error)
	UpdateTask(ctx context.Context, task *model.Task) error
	MoveTask(ctx context.Context, id, columnID int64, order int) error
	DeleteTask(ctx context.Context, id int64) error
	SearchTasks(ctx context.Context, query string) ([]*model.Task, error)
}

type holidaysService interface {
	CreateFeed(ctx context.Context, info *model.HolidayFeedCreate) (*model.HolidayFeed, error)
	GetFeed(ctx context.Context, id int64) (*model.HolidayFeed, error)
	GetFeeds(ctx context.Context) ([]*model.HolidayFeed, error)
	UpdateFeed(ctx context.Context, feed *model.HolidayFeed) error
	DeleteFeed(ctx context.Context, id int64) error
	SyncFeed(ctx context.Context, id int64) error
}

type categoriesRepository interface {
	CreateCategory(ctx context.Context, q database.Queryable, category *model.CategoryCreate) (int64, error)
	GetCategoryByID(ctx context.Context, q database.Queryable, id int64) (*model.Category, error)
	GetCategories(ctx context.Context, q database.Queryable) ([]*model.Category, error)
	UpdateCategory(ctx context.Context, q database.Queryable, category *model.Category) error
	DeleteCategory(ctx context.Context, q database.Queryable, id int64) error
}

type notesRepository interface {
	CreateNote(ctx context.Context, q database.Queryable, note *model.NoteCreate) (int64, error)
	GetNoteByID(ctx context.Context, q database.Queryable, id int64) (*model.Note, error)
	GetNotes(ctx context.Context, q database.Queryable) ([]*model.Note, error)
	UpdateNote(ctx context.Context, q database.Queryable, note *model.Note) error
	DeleteNote(ctx context.Context, q database.Queryable, id int64) error
	SearchNotes(ctx context.Context, q database.Queryable, query string) ([]*model.Note, error)
}

type searchRepository interface {
	SearchEvents(ctx context.Context, q database.Queryable, query string) ([]*model.Event, error)
}

func NewApi(
	logger *zap.SugaredLogger,
	eventsService eventsService,
	tasksService tasksService,
	holidaysService holidaysService,
	db database.PGX,
	categories categoriesRepository,
	notes notesRepository,
	search searchRepository,
) (*Api, error) {
	a := &Api{
		logger:          logger,
		eventsService:   eventsService,
		tasksService:    tasksService,
		holidaysService: holidaysService,
		db:              db,
		categories:      categories,
		notes:           notes,
		search:          search,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/events", func(r chi.Router) {
		r.Post("/", a.createEventHandler)
		r.Get("/", a.getEventsHandler)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", a.getEventHandler)
			r.Put("/", a.updateEventHandler)
			r.Delete("/", a.deleteEventHandler)
			r.Get("/exceptions", a.getEventExceptionsHandler)
			r.Route("/occurrences", func(r chi.Router) {
				r.Get("/", a.getOccurrencesHandler)
				r.Put("/{ts}", a.updateOccurrenceHandler)
				r.Delete("/{ts}", a.cancelOccurrenceHandler)
				r.Post("/{ts}/restore", a.restoreOccurrenceHandler)
			})
		})
	})

	r.Route("/rules", func(r chi.Router) {
		r.Post("/", a.createRuleHandler)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", a.getRuleHandler)
			r.Put("/", a.updateRuleHandler)
			r.Delete("/", a.deleteRuleHandler)
		})
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", a.createTaskHandler)
		r.Get("/", a.getTasksHandler)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", a.getTaskHandler)
			r.Put("/", a.updateTaskHandler)
			r.Delete("/", a.deleteTaskHandler)
			r.Put("/move", a.moveTaskHandler)
		})
	})

	r.Route("/categories", func(r chi.Router) {
		r.Post("/", a.createCategoryHandler)
		r.Get("/", a.getCategoriesHandler)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", a.getCategoryHandler)
			r.Put("/", a.updateCategoryHandler)
			r.Delete("/", a.deleteCategoryHandler)
		})
	})

	r.Route("/notes", func(r chi.Router) {
		r.Post("/", a.createNoteHandler)
		r.Get("/", a.getNotesHandler)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", a.getNoteHandler)
			r.Put("/", a.updateNoteHandler)
			r.Delete("/", a.deleteNoteHandler)
		})
	})

	r.Route("/feeds", func(r chi.Router) {
		r.Post("/", a.createFeedHandler)
		r.Get("/", a.getFeedsHandler)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", a.getFeedHandler)
			r.Put("/", a.updateFeedHandler)
			r.Delete("/", a.deleteFeedHandler)
			r.Post("/sync", a.syncFeedHandler)
		})
	})

	r.Get("/search", a.searchHandler)

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
