package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"givehub/internal/models/request_models"
	"givehub/internal/models/response_models"
	"givehub/internal/services"
	"givehub/pkg/utils"
)

type EventsController struct {
	eventService      services.EventServiceInterface
	statsService      services.StatsServiceInterface
	suggestionService services.SuggestionServiceInterface
	logger            *zap.Logger
}

func NewEventsController(
	eventService services.EventServiceInterface,
	statsService services.StatsServiceInterface,
	suggestionService services.SuggestionServiceInterface,
	logger *zap.Logger,
) *EventsController {
	return &EventsController{
		eventService:      eventService,
		statsService:      statsService,
		suggestionService: suggestionService,
		logger:            logger,
	}
}

// ListEvents handles GET /api/events with the four optional filters. An
// unparseable active value means the flag is not applied.
func (ec *EventsController) ListEvents(c *gin.Context) {
	filters := request_models.EventFilters{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Date:     c.Query("date"),
	}
	if raw, ok := c.GetQuery("active"); ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			filters.Active = &v
		}
	}

	events, err := ec.eventService.ListEvents(filters, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, ec.logger, err)
		return
	}

	utils.RespondListing(c, events, len(events), response_models.AppliedFilters{
		Category: filters.Category,
		Location: filters.Location,
		Date:     filters.Date,
		Active:   c.Query("active"),
	})
}

func (ec *EventsController) ListActiveEvents(c *gin.Context) {
	events, err := ec.eventService.ListActiveUpcoming(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, ec.logger, err)
		return
	}

	utils.RespondList(c, events, len(events), "Active upcoming events retrieved successfully")
}

func (ec *EventsController) GetEventByID(c *gin.Context) {
	event, err := ec.eventService.GetEventByID(c.Param("id"), c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, ec.logger, err)
		return
	}

	utils.RespondSuccess(c, event)
}

func (ec *EventsController) GetSearchSuggestions(c *gin.Context) {
	suggestions, err := ec.suggestionService.GetSearchSuggestions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, ec.logger, err)
		return
	}

	utils.RespondSuccess(c, suggestions)
}

func (ec *EventsController) GetSummaryStats(c *gin.Context) {
	stats, err := ec.statsService.GetSummaryStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, ec.logger, err)
		return
	}

	utils.RespondSuccess(c, stats)
}
