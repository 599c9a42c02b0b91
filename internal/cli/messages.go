package cli

import (
	"errors"

	"github.com/dmitrijs2005/recordkeeper/internal/common"
)

// outcomeMessage maps engine errors to the messages shown to the user.
// Persistence failures deserve a special note: the in-memory change was
// applied, but it may not survive a restart.
func outcomeMessage(err error) string {
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, common.ErrorUnauthorized):
		return "Invalid username or password"
	case errors.Is(err, common.ErrorNotAuthenticated):
		return "Please log in first"
	case errors.Is(err, common.ErrorUsernameTaken):
		return "Username already exists"
	case errors.Is(err, common.ErrorEmailTaken):
		return "Email already in use"
	case errors.Is(err, common.ErrorUnknownQuestion):
		return "Please pick a security question from the list"
	case errors.Is(err, common.ErrorPasswordIncorrect):
		return "Current password is incorrect"
	case errors.Is(err, common.ErrorPasswordTooShort):
		return "New password must be at least 6 characters"
	case errors.Is(err, common.ErrorDuplicateName):
		return "Customer name already exists"
	case errors.Is(err, common.ErrorNotFound):
		return "Information is incorrect"
	case errors.Is(err, common.ErrorPersistence):
		return "Saved in memory only: writing the store failed, the change may not survive a restart"
	case errors.Is(err, common.ErrorExternalSource):
		return "No data available from the sample source"
	default:
		return "Operation failed: " + err.Error()
	}
}
