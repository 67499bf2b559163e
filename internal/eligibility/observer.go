package eligibility

// Observer receives the wizard's outbound calls into the rendering layer.
// It's an optional dependency: a Wizard without one works the same, it just
// has nobody to tell.
type Observer interface {
	// SelectionRequired is called when Advance is attempted while the
	// current question has no answer. Typically shown as a toast.
	SelectionRequired(questionID string)

	// NavigateTo asks the host to open a program's link. The link is
	// opaque catalog data.
	NavigateTo(programID, link string)
}

// notifySelectionRequired is a nil-safe helper.
func notifySelectionRequired(obs Observer, questionID string) {
	if obs == nil {
		return
	}
	obs.SelectionRequired(questionID)
}

// notifyNavigate is a nil-safe helper.
func notifyNavigate(obs Observer, programID, link string) {
	if obs == nil {
		return
	}
	obs.NavigateTo(programID, link)
}
