package http

import (
	"github.com/gin-gonic/gin"

	"videotube/usecase"
)

type ISubscriptionHandler interface {
	Toggle(c *gin.Context)
	Subscribers(c *gin.Context)
	SubscribedChannels(c *gin.Context)
}

type SubscriptionHandler struct {
	subscriptionUsecase usecase.ISubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecase.ISubscriptionUsecase) ISubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	result, err := h.subscriptionUsecase.Toggle(c.Request.Context(), currentUserID(c), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result, "Subscription toggled successfully")
}

func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	subscribers, err := h.subscriptionUsecase.Subscribers(c.Request.Context(), c.Param("channelId"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, subscribers, "Subscribers fetched successfully")
}

func (h *SubscriptionHandler) SubscribedChannels(c *gin.Context) {
	channels, err := h.subscriptionUsecase.SubscribedChannels(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, channels, "Subscribed channels fetched successfully")
}
