package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recordkeeper/internal/accounts"
	"github.com/dmitrijs2005/recordkeeper/internal/common"
	"github.com/dmitrijs2005/recordkeeper/internal/validate"
)

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}

	sess, err := a.accounts.Authenticate(ctx, username, password)
	if err != nil {
		fmt.Fprintln(a.out, outcomeMessage(err))
		return err
	}

	a.session = sess
	fmt.Fprintf(a.out, "Welcome, %s\n", sess.Username)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Security questions:")
	for i, q := range accounts.SecurityQuestions {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, q)
	}
	choice, err := GetInt(a.reader, "Question number", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	if choice < 1 || choice > len(accounts.SecurityQuestions) {
		fmt.Fprintln(a.out, "Please pick a security question from the list")
		return common.ErrorUnknownQuestion
	}
	answer, err := GetSimpleText(a.reader, "Answer", a.out)
	if err != nil {
		return err
	}

	if err := validate.Register(validate.RegisterForm{
		Username:        username,
		Password:        password,
		PasswordConfirm: confirm,
		Email:           email,
		SecurityAnswer:  answer,
	}); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	_, err = a.accounts.Register(ctx, accounts.RegisterParams{
		Username:         username,
		Password:         password,
		Email:            email,
		SecurityQuestion: accounts.SecurityQuestions[choice-1],
		SecurityAnswer:   answer,
	})
	fmt.Fprintln(a.out, outcomeMessage(err))
	return err
}

// ResetPassword is the two-step recovery flow: look up the account to show
// its security question, then verify the answer. The generated password is
// disclosed exactly once.
func (a *App) ResetPassword(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	acc, err := a.accounts.GetByUsername(username)
	if err != nil {
		// Same message as a wrong answer so the flow does not reveal
		// which usernames exist.
		fmt.Fprintln(a.out, outcomeMessage(common.ErrorNotFound))
		return err
	}

	fmt.Fprintf(a.out, "Security question: %s\n", acc.SecurityQuestion)
	answer, err := GetSimpleText(a.reader, "Answer", a.out)
	if err != nil {
		return err
	}

	password, err := a.accounts.ResetPassword(ctx, username, answer)
	if err != nil {
		fmt.Fprintln(a.out, outcomeMessage(err))
		return err
	}

	fmt.Fprintf(a.out, "Your new password is: %s\n", password)
	fmt.Fprintln(a.out, "Write it down now; it will not be shown again.")
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, outcomeMessage(common.ErrorNotAuthenticated))
		return common.ErrorNotAuthenticated
	}

	current, err := GetPassword("Current password", a.out)
	if err != nil {
		return err
	}
	newPassword, err := GetPassword("New password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	if newPassword != confirm {
		fmt.Fprintln(a.out, "Password confirmation does not match")
		return errors.New("password confirmation does not match")
	}

	err = a.accounts.ChangePassword(ctx, a.session, current, newPassword)
	fmt.Fprintln(a.out, outcomeMessage(err))
	return err
}

// Logout clears the session. Idempotent: logging out while anonymous is
// not an error.
func (a *App) Logout(ctx context.Context) error {
	if a.session != nil {
		a.log.Info(ctx, "session closed", "username", a.session.Username)
	}
	a.session = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
