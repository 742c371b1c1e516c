package web

import (
	"time"

	vm "github.com/ericfisherdev/smartcampus/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/smartcampus/internal/domain/model"
)

const (
	submitLabel        = "Sign In"
	submitLoadingLabel = "Signing In..."
	loginErrorMessage  = "Please enter both your faculty ID and password."
)

// portals lists the portal chooser entries in display order.
var portals = []vm.PortalCardViewModel{
	{
		Title:       "Faculty Portal",
		Description: "Access course management, grading and research tools.",
		Href:        model.RouteFacultyLogin.Path(),
		Action:      "Faculty Login",
		Primary:     true,
	},
	{
		Title:       "Student Portal",
		Description: "View your timetable, results and campus announcements.",
		Href:        "/student-login",
		Action:      "Student Login",
	},
}

// toQuoteViewModel renders a quote's markdown into sanitized HTML.
func toQuoteViewModel(q model.Quote) vm.QuoteViewModel {
	return vm.QuoteViewModel{
		HTML:   RenderMarkdown(q.Text),
		Author: q.Author,
	}
}

// toLoginViewModel converts a login form snapshot for rendering.
func toLoginViewModel(snap model.LoginSnapshot, csrf string, showError bool) vm.LoginViewModel {
	label := submitLabel
	if snap.Loading {
		label = submitLoadingLabel
	}

	var errMsg string
	if showError && snap.LastOutcome == model.AttemptOutcomeFailed {
		errMsg = loginErrorMessage
	}

	return vm.LoginViewModel{
		Action:       model.RouteFacultyLogin.Path(),
		CSRFToken:    csrf,
		Identifier:   snap.Identifier,
		Remember:     snap.Remember,
		Loading:      snap.Loading,
		SubmitLabel:  label,
		LoadingLabel: submitLoadingLabel,
		Error:        errMsg,
	}
}

// toAttemptViewModels converts journal records for the dashboard.
func toAttemptViewModels(records []model.AttemptRecord) []vm.AttemptViewModel {
	out := make([]vm.AttemptViewModel, 0, len(records))
	for _, rec := range records {
		out = append(out, vm.AttemptViewModel{
			Identifier: rec.Identifier,
			Outcome:    string(rec.Outcome),
			Reason:     rec.Reason,
			Remember:   rec.Remember,
			OccurredAt: rec.OccurredAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
