package mapsHandler

import (
	"Tripp/internal/api/maps"
	contextPkg "Tripp/pkg/context"
	"Tripp/pkg/handlerUtil"
	jwtPkg "Tripp/pkg/jwt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *MapsHandler) HandleGetCoordinates(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	destination := ctx.Query("destination")

	res, err := h.mapsService.GetCoordinates(c, destination)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_coordinates")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *MapsHandler) HandleSaveLocation(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return err
	}

	var req maps.SaveLocationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.mapsService.SaveLocation(c, user, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "save_location")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, res)
	}
}

func (h *MapsHandler) HandleListLocations(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return err
	}

	tripID, err := strconv.ParseInt(ctx.Params("tripId"), 10, 64)
	if err != nil {
		return errHandler.Handle(ctx, requestID, maps.ErrTripNotFound, ctx.Path(), "parse_trip_id")
	}

	res, err := h.mapsService.ListLocations(c, user, tripID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_locations")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
