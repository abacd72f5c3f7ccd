package handlers

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"business-service/events"
	"business-service/models"
	"business-service/preferences"
	"business-service/repository"
	"business-service/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Handler holds the collaborators shared by every endpoint
type Handler struct {
	businesses     *repository.Businesses
	menu           *repository.MenuItems
	categories     *repository.CuisineCategories
	prefs          preferences.Source
	events         events.Publisher
	defaultLogoURL string
}

func New(db *gorm.DB, prefs preferences.Source, pub events.Publisher, defaultLogoURL string) *Handler {
	registerValidators()
	if pub == nil {
		pub = events.Nop{}
	}
	return &Handler{
		businesses:     repository.NewBusinesses(db),
		menu:           repository.NewMenuItems(db),
		categories:     repository.NewCuisineCategories(db),
		prefs:          prefs,
		events:         pub,
		defaultLogoURL: defaultLogoURL,
	}
}

var validatorsOnce sync.Once

// registerValidators adds the businessstatus tag to gin's validator
func registerValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err := v.RegisterValidation("businessstatus", func(fl validator.FieldLevel) bool {
			return statemachine.IsValid(models.BusinessStatus(fl.Field().String()))
		})
		if err != nil {
			log.Printf("register businessstatus validator: %v", err)
		}
	})
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// serverError logs the cause and answers with a generic 500
func serverError(c *gin.Context, msg string, err error) {
	log.Printf("%s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
}
