package controllers

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BRegistration/forms"
	"github.com/CPU-commits/Intranet_BRegistration/res"
	"github.com/CPU-commits/Intranet_BRegistration/services"
	"github.com/gin-gonic/gin"
)

// Services
var catalogService = services.NewCatalogService()
var registrationService = services.NewRegistrationService()
var seatsService = services.NewSeatsService()

type RegistrationController struct{}

// Query
// GetSubjects godoc
// @Summary     Get registerable subjects
// @Description Get the offerable catalog grouped per course, completed courses and unmet prerequisites filtered out
// @Tags        registration
// @Tags        roles.student
// @Tags        roles.student_directive
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.SubjectsMap}
// @Failure     401 {object} res.Response{} "Unauthorized"
// @Failure     503 {object} res.Response{} "Service Unavailable - DB Service Unavailable"
// @Router      /subjects [get]
func (registration *RegistrationController) GetSubjects(c *gin.Context) {
	claims, ok := services.NewClaimsFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, res.Response{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}
	subjects, errRes := catalogService.GetRegisterableSubjects(claims)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["subjects"] = subjects
	c.JSON(200, res.Response{
		Success: true,
		Data:    response,
	})
}

// GetSubscribed godoc
// @Summary     Get subscribed subjects
// @Description Get the student's stored subject id set, sorted
// @Tags        registration
// @Tags        roles.student
// @Tags        roles.student_directive
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.SubscribedMap}
// @Failure     401 {object} res.Response{} "Unauthorized"
// @Failure     503 {object} res.Response{} "Service Unavailable - DB Service Unavailable"
// @Router      /subscribed [get]
func (registration *RegistrationController) GetSubscribed(c *gin.Context) {
	claims, ok := services.NewClaimsFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, res.Response{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}
	subscribed, errRes := catalogService.GetSubscribed(claims)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["subscribed"] = subscribed
	c.JSON(200, res.Response{
		Success: true,
		Data:    response,
	})
}

// GetRemSeats godoc
// @Summary     Get remaining seats
// @Description Get a one-shot snapshot of remaining seats for every subject in the term
// @Tags        registration
// @Tags        roles.student
// @Tags        roles.student_directive
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.RemSeatsMap}
// @Failure     401 {object} res.Response{} "Unauthorized"
// @Failure     503 {object} res.Response{} "Service Unavailable - DB Service Unavailable"
// @Router      /rem_seats [get]
func (registration *RegistrationController) GetRemSeats(c *gin.Context) {
	seatCounts, errRes := seatsService.RemainingFor(nil)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["rem_seats"] = seatCounts
	c.JSON(200, res.Response{
		Success: true,
		Data:    response,
	})
}

// Feed
// Register godoc
// @Summary     Register subjects
// @Description Replace the student's subscriptions with the submitted full selection
// @Tags        registration
// @Tags        roles.student
// @Tags        roles.student_directive
// @Accept      json
// @Produce     json
// @Param       subjects body     forms.RegisterForm true "Full desired selection"
// @Success     200      {object} res.Response{body=smaps.RemSeatsMap}
// @Failure     400      {object} res.Response{} "Bad body || Unknown subject"
// @Failure     401      {object} res.Response{} "Unauthorized"
// @Failure     409      {object} res.Response{} "Subject has no remaining seats"
// @Failure     503      {object} res.Response{} "Service Unavailable - NATS || DB Service Unavailable"
// @Router      /register [post]
func (registration *RegistrationController) Register(c *gin.Context) {
	claims, ok := services.NewClaimsFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, res.Response{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}
	var registerData *forms.RegisterForm
	if err := c.BindJSON(&registerData); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	seatCounts, errRes := registrationService.RegisterSubjects(claims, registerData.Subjects)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["rem_seats"] = seatCounts
	c.JSON(200, res.Response{
		Success: true,
		Data:    response,
	})
}
