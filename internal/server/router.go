package server

import (
	"github.com/gin-gonic/gin"

	bidding "property-bidding/internal/biddingService"
	property "property-bidding/internal/propertyService"
	bidhandler "property-bidding/services/bidding/handler"
	prophandler "property-bidding/services/property/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService, propertyService *property.PropertyService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(IdentityMiddleware)      // resolve caller identity from trusted headers

	biddingHandler := bidhandler.NewBiddingHandler(biddingService)
	propertyHandler := prophandler.NewPropertyHandler(propertyService)

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.PlaceBidHandler)
		bids.PUT("/:bid_id", biddingHandler.UpdateBidHandler)
		bids.DELETE("/:bid_id", biddingHandler.CancelBidHandler)
	}

	properties := router.Group("/properties")
	{
		properties.POST("", propertyHandler.CreatePropertyHandler)
		properties.GET("", propertyHandler.ListPropertiesHandler)
		properties.GET("/:property_id", propertyHandler.GetPropertyHandler)
		properties.PUT("/:property_id", propertyHandler.UpdatePropertyHandler)
		properties.DELETE("/:property_id", propertyHandler.DeletePropertyHandler)
		properties.GET("/:property_id/bids", biddingHandler.ViewBidsHandler)
		properties.GET("/:property_id/winning", biddingHandler.WinningBidHandler)
		properties.POST("/:property_id/resolve", biddingHandler.ResolveWinnerHandler)
	}

	return router
}
