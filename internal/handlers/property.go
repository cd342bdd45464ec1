package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"homevest-listings/internal/middleware"
	"homevest-listings/internal/models"
	"homevest-listings/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// ListProperties returns every property owned by the caller.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	properties, err := h.propertyService.ListProperties(c, c.GetString(middleware.ContextUserID))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	property, err := h.propertyService.GetPropertyByID(c, c.GetString(middleware.ContextUserID), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// CreateProperty accepts a multipart listing submission. Field errors come
// back as 400 with one message per field under "message".
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var form models.CreatePropertyForm
	if err := c.ShouldBind(&form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(middleware.PayloadTooLarge(c.Request.ContentLength, tooLarge.Limit))
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": bindingMessages(err)})
		return
	}

	property, err := h.propertyService.CreateProperty(c, c.GetString(middleware.ContextUserID), &form)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

var formType = reflect.TypeOf(models.CreatePropertyForm{})

func bindingMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.Field()
	if f, ok := formType.FieldByName(fe.StructField()); ok {
		if tag := f.Tag.Get("form"); tag != "" {
			name = tag
		}
	}

	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s allows at most %s entries", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
