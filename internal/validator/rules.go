package validator

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"

	"collabmate_backend/internal/models"
)

// registerCustomRules installs application-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'notblank': non-empty after trimming. Used for skill and tech stack
	// entries where "  " must not count as a value.
	mustRegister("notblank", validateNotBlank)

	// 'is-project-status': open, in-progress or completed.
	mustRegister("is-project-status", validateProjectStatus)

	// 'is-swipe-action': like or dislike.
	mustRegister("is-swipe-action", validateSwipeAction)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateProjectStatus(fl validator.FieldLevel) bool {
	switch models.ProjectStatus(fl.Field().String()) {
	case models.ProjectStatusOpen, models.ProjectStatusInProgress, models.ProjectStatusCompleted:
		return true
	}
	return false
}

func validateSwipeAction(fl validator.FieldLevel) bool {
	switch models.SwipeAction(fl.Field().String()) {
	case models.SwipeActionLike, models.SwipeActionDislike:
		return true
	}
	return false
}
