package shared

import (
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/terminal"
)

// Call runs a WorkHub request while a spinner displays message
func Call(ui terminal.UI, message string, request func() (workhub.Response, error)) (workhub.Response, error) {
	s := ui.Spinner(message, terminal.SpinnerOptions{})
	s.Start()
	defer s.Stop()

	return request()
}

// ConfirmDelete asks the user to confirm the deletion of the resource with the provided id
func ConfirmDelete(ui terminal.UI, resource, id string) (bool, error) {
	return ui.Confirm("Are you sure you want to delete %s %s?", resource, id)
}
