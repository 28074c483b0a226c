package tripHandler

import (
	"Tripp/internal/api/trip"
	contextPkg "Tripp/pkg/context"
	"Tripp/pkg/handlerUtil"
	jwtPkg "Tripp/pkg/jwt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *TripHandler) HandleCreateTrip(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return err
	}

	var req trip.CreateTripRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	tripID, err := h.tripService.CreateTrip(c, user, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_trip")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, trip.CreateTripResponse{
			TripID:  tripID,
			Message: "Trip created successfully",
		})
	}
}

func (h *TripHandler) HandleGetTrip(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return err
	}

	tripID, err := parseTripID(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_trip_id")
	}

	res, err := h.tripService.GetTrip(c, user, tripID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_trip")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *TripHandler) HandleUpdateTrip(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return err
	}

	tripID, err := parseTripID(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_trip_id")
	}

	var req trip.UpdateTripRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.tripService.UpdateTrip(c, user, tripID, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_trip")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, trip.MessageResponse{
			Message: "Trip updated successfully",
		})
	}
}

func (h *TripHandler) HandleDeleteTrip(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return err
	}

	tripID, err := parseTripID(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_trip_id")
	}

	if err := h.tripService.DeleteTrip(c, user, tripID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_trip")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, trip.MessageResponse{
			Message: "Trip deleted successfully",
		})
	}
}

func (h *TripHandler) HandleListTrips(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return err
	}

	var query trip.ListTripsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.tripService.ListTrips(c, user, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_trips")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

// A non-numeric trip id can only name a nonexistent resource.
func parseTripID(ctx *fiber.Ctx) (int64, error) {
	tripID, err := strconv.ParseInt(ctx.Params("tripId"), 10, 64)
	if err != nil {
		return 0, trip.ErrTripNotFound
	}
	return tripID, nil
}
