package handler

import (
	"cs-quiz/internal/middleware"
	"cs-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DailySetHandler handles daily question set HTTP requests
type DailySetHandler struct {
	service   service.DailySetService
	questions service.DailyQuestionsService
}

// NewDailySetHandler creates a new DailySetHandler instance
func NewDailySetHandler(service service.DailySetService, questions service.DailyQuestionsService) *DailySetHandler {
	return &DailySetHandler{
		service:   service,
		questions: questions,
	}
}

// GetDailySet godoc
// @Summary Get the daily question set
// @Description Returns the question set shared by every user on the given date. Without a date, today in the service timezone is used. Today's set is generated and stored on first access; other dates are only served when already stored.
// @Tags daily-set
// @Produce json
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} dto.DailySetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /daily-set [get]
func (h *DailySetHandler) GetDailySet(c *fiber.Ctx) error {
	if date, ok := middleware.ValidatedDate(c); ok {
		resp, err := h.service.GetDailySet(c.UserContext(), date)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	resp, err := h.service.GetTodayDailySet(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetDailyQuestions godoc
// @Summary Get the daily set questions
// @Description Returns the questions of the daily set in set order, with topic name, text, hint and answer options in the requested language. Unsupported languages fall back to Korean.
// @Tags daily-set
// @Produce json
// @Param date query string false "Calendar date (YYYY-MM-DD)"
// @Param lang query string false "Content language" Enums(ko, en) default(ko)
// @Success 200 {object} dto.DailyQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /daily-set/questions [get]
func (h *DailySetHandler) GetDailyQuestions(c *fiber.Ctx) error {
	lang := c.Query("lang", service.LangKo)

	if date, ok := middleware.ValidatedDate(c); ok {
		resp, err := h.questions.GetDailyQuestions(c.UserContext(), date, lang)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	resp, err := h.questions.GetTodayDailyQuestions(c.UserContext(), lang)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
