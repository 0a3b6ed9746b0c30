package web

import (
	"errors"
	"net/http"

	"bitbucket.org/crgw/flight-hub/internal/booking"
	"bitbucket.org/crgw/flight-hub/internal/catalog"
	"bitbucket.org/crgw/flight-hub/internal/routes"
	"bitbucket.org/crgw/flight-hub/internal/schema"
	"bitbucket.org/crgw/flight-hub/internal/tools/slowlog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type confirmBookingResponse struct {
	ConfirmationCode string `json:"confirmationCode"`
}

type bookingInfoResponse struct {
	BookingInfo schema.Booking `json:"bookingInfo"`
}

func RegisterRoutes(
	router *gin.Engine,
	airports *catalog.Catalog,
	generator *routes.Generator,
	bookings *booking.Service,
) {
	router.GET("/iataCodes", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, airports.IATACodes())
	})

	router.GET("/countries", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, airports.Countries())
	})

	router.GET("/cities/:country", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, airports.Cities(ctx.Param("country")))
	})

	router.POST("/generateRoutes", func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		var params schema.GenerateRoutesParams
		if err := ctx.ShouldBindJSON(&params); err != nil {
			HandleError(ctx, http.StatusBadRequest, "Failed to bind request params", err)
			return
		}

		departure, err := routes.ParseEndpoint(params.DepartureCity)
		if err != nil {
			HandleError(ctx, http.StatusBadRequest, "Invalid departure city", err)
			return
		}
		arrival, err := routes.ParseEndpoint(params.ArrivalCity)
		if err != nil {
			HandleError(ctx, http.StatusBadRequest, "Invalid arrival city", err)
			return
		}

		slowLog := slowlog.CreateLogger(logger)
		slowLog.Start("generateRoutes")

		var batch []schema.Route
		if params.FlightType == "return" {
			batch = generator.RoundTrip(departure, arrival, params.Dates)
		} else {
			batch = generator.OneWay(departure, arrival, params.Dates)
		}

		slowLog.Stop("generateRoutes")

		ctx.JSON(http.StatusOK, batch)
	})

	router.POST("/confirmBooking", func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		var params schema.ConfirmBookingParams
		if err := ctx.ShouldBindJSON(&params); err != nil {
			HandleError(ctx, http.StatusBadRequest, "Failed to bind request params", err)
			return
		}

		code, err := bookings.Confirm(ctx.Request.Context(), params, logger)
		if err != nil {
			var missing *schema.MissingFieldsError
			if errors.As(err, &missing) {
				HandleError(ctx, http.StatusBadRequest, missing.Error(), nil)
				return
			}

			HandleError(ctx, http.StatusInternalServerError, "Internal Server Error", err)
			return
		}

		ctx.JSON(http.StatusOK, confirmBookingResponse{ConfirmationCode: code})
	})

	router.POST("/bookingInfo", func(ctx *gin.Context) {
		var params schema.BookingInfoParams
		if err := ctx.ShouldBindJSON(&params); err != nil {
			HandleError(ctx, http.StatusBadRequest, "Failed to bind request params", err)
			return
		}

		if params.Email == "" {
			HandleError(ctx, http.StatusBadRequest, "Missing email in the request payload", schema.ErrMissingEmail)
			return
		}

		booked, err := bookings.Lookup(ctx.Request.Context(), params.Email)
		if err != nil {
			if errors.Is(err, schema.ErrBookingNotFound) {
				HandleError(ctx, http.StatusNotFound, "Booking not found for the provided email", err)
				return
			}

			HandleError(ctx, http.StatusInternalServerError, "Internal Server Error", err)
			return
		}

		ctx.JSON(http.StatusOK, bookingInfoResponse{BookingInfo: booked})
	})
}
