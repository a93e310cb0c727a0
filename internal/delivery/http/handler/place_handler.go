package handler

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/place-microservice/internal/delivery/http/middleware"
	"github.com/place-microservice/internal/pkg/errors"
	"github.com/place-microservice/internal/pkg/utils"
	"github.com/place-microservice/internal/pkg/validator"
	"github.com/place-microservice/internal/usecase"
	"github.com/place-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceHandler - обработчик запросов к местам
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// Create godoc
// @Summary Создание места
// @Description Создаёт геоточку от имени аутентифицированного пользователя. Координаты принимаются из query или формы, теги - массивом имён, фотографии - multipart-файлами в поле photos (пустые файлы пропускаются).
// @Tags Places
// @Accept mpfd
// @Produce json
// @Param longitude query number true "Долгота"
// @Param latitude query number true "Широта"
// @Param tags query []string false "Теги места (water_source, mobile_signal, campfire_site, toilet, shoreline, fishing_spot, bike_access, paid_entry, sand, stone, ground)"
// @Param photos formData file false "Фотографии места"
// @Security api_key
// @Success 200 {object} dto.CreatePlaceResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /add [post]
func (h *PlaceHandler) Create(c *fiber.Ctx) error {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	longitude, err := floatParam(c, "longitude")
	if err != nil {
		return utils.SendError(c, err)
	}
	latitude, err := floatParam(c, "latitude")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.CreatePlaceRequest{
		Longitude: longitude,
		Latitude:  latitude,
		Tags:      tagsParam(c),
	}

	place, err := h.placeUC.CreatePlace(c.Context(), identity, req, photoFiles(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.CreatePlaceResponse{
		Message: "Place created successfully",
		Object:  place,
	})
}

// GetByID godoc
// @Summary Место по идентификатору
// @Description Возвращает место с фотографиями и профилем автора. Профиль равен null, если сервис пользователей недоступен или пользователь не найден.
// @Tags Places
// @Produce json
// @Param ID query string true "Идентификатор места (UUID)"
// @Success 200 {object} dto.GetPlaceResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 "Место не найдено, тело пустое"
// @Router / [get]
func (h *PlaceHandler) GetByID(c *fiber.Ctx) error {
	raw := c.Query("ID")
	if raw == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.placeUC.GetPlace(c.Context(), id)
	if err != nil {
		// контракт: отсутствие места - 404 с пустым телом
		if err == errors.ErrPlaceNotFound {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// Search godoc
// @Summary Радиусный поиск мест
// @Description Возвращает места не дальше radius километров от центра, не больше count штук. Порядок результатов - порядок вставки, без сортировки по расстоянию.
// @Tags Places
// @Produce json
// @Param latitude query number true "Широта центра"
// @Param longitude query number true "Долгота центра"
// @Param radius query number true "Радиус поиска в километрах"
// @Param count query int false "Максимум результатов" default(100)
// @Success 200 {object} dto.RadiusSearchResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /get [get]
func (h *PlaceHandler) Search(c *fiber.Ctx) error {
	latitude, err := floatParam(c, "latitude")
	if err != nil {
		return utils.SendError(c, err)
	}
	longitude, err := floatParam(c, "longitude")
	if err != nil {
		return utils.SendError(c, err)
	}
	radius, err := floatParam(c, "radius")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.RadiusSearchRequest{
		Latitude:  latitude,
		Longitude: longitude,
		RadiusKm:  radius,
		Count:     c.QueryInt("count", 100),
	}

	// Валидация
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	places, err := h.placeUC.SearchByRadius(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.RadiusSearchResponse{
		Message: "Search completed successfully",
		Places:  places,
	})
}

// floatParam читает число из query, затем из формы.
func floatParam(c *fiber.Ctx, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		raw = c.FormValue(name)
	}
	if raw == "" {
		return 0, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"missing": name,
		})
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"invalid": name,
		})
	}
	return value, nil
}

// tagsParam собирает теги из повторяющихся параметров query и полей формы;
// значения через запятую разворачиваются.
func tagsParam(c *fiber.Ctx) []string {
	var raw []string
	for _, v := range c.Context().QueryArgs().PeekMulti("tags") {
		raw = append(raw, string(v))
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		raw = append(raw, form.Value["tags"]...)
	}

	var tags []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				tags = append(tags, trimmed)
			}
		}
	}
	return tags
}

// photoFiles возвращает загруженные файлы из поля photos, если они есть.
func photoFiles(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["photos"]
}
