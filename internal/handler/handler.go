package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/icu-ward-dev/shift-manager/backend/internal/config"
	"github.com/icu-ward-dev/shift-manager/backend/internal/domain"
	"github.com/icu-ward-dev/shift-manager/backend/internal/holiday"
	"github.com/icu-ward-dev/shift-manager/backend/internal/repository"
	"github.com/icu-ward-dev/shift-manager/backend/internal/schedule"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	translator    ut.Translator
	roster        domain.Roster
	resolver      *holiday.Resolver
	aggregator    *schedule.Aggregator
	notifyChannel *amqp.Channel
	redisClient   *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, notifyCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	roster := domain.DefaultRoster()

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		translator:    trans,
		roster:        roster,
		resolver:      holiday.NewResolver(),
		aggregator:    schedule.NewAggregator(roster, cfg.Schedule.MorningExemptIDs),
		notifyChannel: notifyCh,
		redisClient:   rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// การยืนยันตัวตน
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/admin/login", h.AdminLogin)
		r.Post("/staff/login", h.StaffLogin)
		r.Post("/staff/register", h.StaffRegister)
		r.Post("/logout", h.Logout)
	})

	// API ด้านล่างต้องล็อกอินก่อนจึงเรียกได้
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/roster", h.GetRoster)
		r.Get("/shifts", h.GetShiftCatalogs)
		r.Get("/holidays", h.GetHolidays)
		r.Get("/reference/assignment-options", h.GetAssignmentOptions)

		// ตารางที่เผยแพร่แล้ว เจ้าหน้าที่ทุกคนอ่านได้
		r.Route("/published", func(r chi.Router) {
			r.Get("/", h.GetPublished)
			r.Get("/summary", h.GetPublishedSummary)
			r.Get("/on-shift", h.GetStaffOnShift)
			r.Get("/my-schedule", h.GetMySchedule)
			r.Get("/export", h.ExportPublished)
		})

		// ร่างและการเผยแพร่เป็นของผู้ดูแลระบบเท่านั้น
		r.Group(func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))

			r.Route("/drafts/schedule", func(r chi.Router) {
				r.Get("/", h.GetScheduleDraft)
				r.Put("/", h.SaveScheduleDraft)
				r.Post("/cell", h.CommitScheduleCell)
			})

			r.Route("/drafts/holidays", func(r chi.Router) {
				r.Post("/", h.AddCustomHoliday)
				r.Post("/hide", h.HidePublicHoliday)
				r.Delete("/{id}", h.DeleteCustomHoliday)
			})

			r.Route("/drafts/assignments", func(r chi.Router) {
				r.Get("/", h.GetAssignmentsDraft)
				r.Put("/", h.SaveAssignmentsDraft)
				r.Post("/batch", h.ReplaceAssignmentsBatch)
			})

			r.Post("/publish", h.Publish)
		})
	})
}
