package controller

import (
	"restaurant/logger"
	"restaurant/service"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviews *service.ReviewService
	log     *logger.Logger
}

func NewReviewController(reviews *service.ReviewService, log *logger.Logger) *ReviewController {
	return &ReviewController{reviews: reviews, log: log.WithComponent("review_controller")}
}

func (ctl *ReviewController) List(c *gin.Context) {
	page, valid := pagination(c)
	if !valid {
		return
	}
	reviews, err := ctl.reviews.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched reviews successfully", reviews)
}

func (ctl *ReviewController) Get(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	review, err := ctl.reviews.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched review successfully", review)
}

func (ctl *ReviewController) Create(c *gin.Context) {
	var req service.CreateReviewInput
	if !bindJSON(c, &req) {
		return
	}
	review, err := ctl.reviews.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	created(c, "Review created successfully", review)
}

func (ctl *ReviewController) Update(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	var req service.UpdateReviewInput
	if !bindJSON(c, &req) {
		return
	}
	review, err := ctl.reviews.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Review updated successfully", review)
}

func (ctl *ReviewController) Delete(c *gin.Context) {
	id, valid := pathID(c, "id")
	if !valid {
		return
	}
	if err := ctl.reviews.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctl.log, err)
		return
	}
	deleted(c)
}

func (ctl *ReviewController) ListByCustomer(c *gin.Context) {
	id, valid := pathID(c, "customer_id")
	if !valid {
		return
	}
	reviews, err := ctl.reviews.FindByCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched reviews successfully", reviews)
}

func (ctl *ReviewController) ListByOrder(c *gin.Context) {
	id, valid := pathID(c, "order_id")
	if !valid {
		return
	}
	reviews, err := ctl.reviews.FindByOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched reviews successfully", reviews)
}

func (ctl *ReviewController) ListByRating(c *gin.Context) {
	rating, valid := pathInt(c, "rating")
	if !valid {
		return
	}
	reviews, err := ctl.reviews.FindByRating(c.Request.Context(), rating)
	if err != nil {
		respondError(c, ctl.log, err)
		return
	}
	ok(c, "Fetched reviews successfully", reviews)
}
