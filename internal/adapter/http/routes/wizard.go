package routes

import (
	"vitrine/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWizards = "/wizards"
)

func addWizardRoutes(rg *gin.RouterGroup, h *handlers.WizardHandler) {
	wizards := rg.Group(PathWizards)
	{
		wizards.POST("", h.Start)
		wizards.GET("/:id", h.Get)
		wizards.DELETE("/:id", h.Discard)
		wizards.GET("/:id/steps/:step", h.RenderStep)

		wizards.PATCH("/:id/draft", h.PatchDraft)
		wizards.PUT("/:id/lists/:field", h.SetListText)
		wizards.POST("/:id/weekdays/:day", h.ToggleWeekday)

		wizards.POST("/:id/next", h.Next)
		wizards.POST("/:id/back", h.Back)
		wizards.POST("/:id/jump", h.Jump)

		wizards.POST("/:id/media/:slot", h.AttachMedia)
		wizards.DELETE("/:id/media/:slot/:index", h.RemoveMedia)

		wizards.POST("/:id/submit", h.Submit)
	}
}
