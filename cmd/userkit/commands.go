package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/innovativeGem/userkit/pkg/apiclient"
	"github.com/innovativeGem/userkit/pkg/form"
	"github.com/innovativeGem/userkit/pkg/session"
	"github.com/innovativeGem/userkit/pkg/userlist"
	"github.com/innovativeGem/userkit/pkg/validator"
)

func (a *app) cmdSignUp(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	fs.SetOutput(a.out)
	username := fs.String("username", "", "user name")
	email := fs.String("email", "", "e-mail address")
	password := fs.String("password", "", "password")
	passwordRepeat := fs.String("password-repeat", "", "password again")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f := form.New("username", "email", "password", "passwordRepeat")
	f.Set("username", *username)
	f.Set("email", *email)
	f.Set("password", *password)
	f.Set("passwordRepeat", *passwordRepeat)

	errs := validator.Apply(
		validator.RequiredString("username", *username),
		validator.MinLenString("username", *username, 4),
		validator.MaxLenString("username", *username, 32),
		validator.RequiredString("email", *email),
		validator.ValidEmail("email", *email),
		validator.RequiredString("password", *password),
		validator.MinLenString("password", *password, 6),
		validator.EqualStrings("passwordRepeat", *passwordRepeat, *password),
	)
	if errs != nil {
		byField := make(map[string]string)
		for _, ve := range validator.Extract(errs) {
			if _, taken := byField[ve.Field]; taken {
				continue
			}
			key := ve.TranslationKey
			if ve.Field == "passwordRepeat" {
				key = "passwordMismatchValidation"
			}
			byField[ve.Field] = a.t(key)
		}
		f.ApplyFieldErrors(byField)
		a.printFormErrors(f)
		return errors.New(a.t("signup.failure"))
	}

	f.SetPending(true)
	err := a.client.SignUp(ctx, apiclient.SignUpRequest{
		Username: *username,
		Email:    *email,
		Password: *password,
	})
	f.SetPending(false)

	if err != nil {
		var verr *apiclient.ValidationError
		if errors.As(err, &verr) {
			f.ApplyFieldErrors(verr.Fields)
			a.printFormErrors(f)
			return errors.New(a.t("signup.failure"))
		}
		return a.describe(err)
	}

	fmt.Fprintln(a.out, a.t("signup.success"))
	return nil
}

func (a *app) cmdActivate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("missing activation token")
	}
	if err := a.client.Activate(ctx, args[0]); err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("%s: %s", a.t("activate.failure"), apiErr.Message)
		}
		return a.describe(err)
	}
	fmt.Fprintln(a.out, a.t("activate.success"))
	return nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "e-mail address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.client.Login(ctx, apiclient.Credentials{Email: *email, Password: *password})
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("%s: %s", a.t("loginFlow.failure"), apiErr.Message)
		}
		return a.describe(err)
	}

	if err := a.session.Dispatch(ctx, session.LoginSuccess{
		ID:       resp.ID,
		Username: resp.Username,
		Header:   "Bearer " + resp.Token,
		Image:    resp.Image,
	}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.t("loginFlow.success", "username", resp.Username))
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	// Fire and forget: the local session dies regardless of whether the
	// backend heard about it.
	if err := a.client.Logout(ctx); err != nil {
		a.log.WarnContext(ctx, "backend logout failed", "error", err)
	}
	if err := a.session.Dispatch(ctx, session.LogoutSuccess{}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.t("logoutFlow.success"))
	return nil
}

func (a *app) cmdUsers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	fs.SetOutput(a.out)
	page := fs.Int("page", 0, "zero-based page number")
	size := fs.Int("size", 10, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pager := userlist.NewPager(a.client, userlist.WithPageSize(*size))
	if err := pager.Load(ctx, *page); err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("%s: %s", a.t("userList.loadFailure"), apiErr.Message)
		}
		return a.describe(err)
	}

	state := pager.State()
	fmt.Fprintln(a.out, a.t("users"))
	if len(state.Content) == 0 {
		fmt.Fprintln(a.out, a.t("userList.empty"))
		return nil
	}
	for _, u := range state.Content {
		fmt.Fprintf(a.out, "  %d\t%s\n", u.ID, u.Username)
	}
	fmt.Fprintln(a.out, a.t("userList.page",
		"page", strconv.Itoa(state.Page+1),
		"total", strconv.Itoa(state.TotalPages)))
	if state.HasPrev() {
		fmt.Fprintln(a.out, a.t("previousPage"))
	}
	if state.HasNext() {
		fmt.Fprintln(a.out, a.t("nextPage"))
	}
	return nil
}

func (a *app) cmdUser(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	u, err := a.client.GetUser(ctx, id)
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return errors.New(a.t("profile.notFound"))
		}
		return a.describe(err)
	}
	fmt.Fprintf(a.out, "%d\t%s\n", u.ID, u.Username)
	return nil
}

func (a *app) cmdUpdate(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(a.out)
	username := fs.String("username", "", "new user name")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	u, err := a.client.UpdateUser(ctx, id, apiclient.UpdateUserRequest{Username: *username})
	if err != nil {
		var verr *apiclient.ValidationError
		if errors.As(err, &verr) {
			for field, msg := range verr.Fields {
				fmt.Fprintf(a.out, "  %s: %s\n", a.t(field), msg)
			}
			return errors.New(a.t("signup.failure"))
		}
		return a.describe(err)
	}

	// Renaming yourself updates the session record too.
	if a.session.State().ID == id {
		if err := a.session.Dispatch(ctx, session.UserUpdateSuccess{Username: u.Username}); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, a.t("profile.updated"))
	return nil
}

func (a *app) cmdDelete(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := a.client.DeleteUser(ctx, id); err != nil {
		return a.describe(err)
	}

	// Deleting your own account ends the session.
	if a.session.State().ID == id {
		if err := a.session.Dispatch(ctx, session.LogoutSuccess{}); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, a.t("profile.deleted"))
	return nil
}

func (a *app) cmdWhoAmI() error {
	state := a.session.State()
	if !state.IsLoggedIn {
		fmt.Fprintln(a.out, a.t("whoami.loggedOut"))
		return nil
	}
	fmt.Fprintln(a.out, a.t("whoami.loggedIn",
		"username", state.Username,
		"id", strconv.FormatInt(state.ID, 10)))
	return nil
}

func (a *app) cmdLang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, a.locale.Language())
		return nil
	}
	if err := a.locale.SetLanguage(args[0]); err != nil {
		return errors.New(a.t("language.unsupported", "lang", args[0]))
	}
	if err := a.storage.Set(ctx, languageKey, a.locale.Language()); err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.t("language.changed", "lang", a.locale.Language()))
	return nil
}

func (a *app) printFormErrors(f *form.Form) {
	for _, field := range f.Fields() {
		if msg := f.Error(field); msg != "" {
			fmt.Fprintf(a.out, "  %s: %s\n", a.t(field), msg)
		}
	}
}

// describe maps client errors onto user-facing messages.
func (a *app) describe(err error) error {
	if errors.Is(err, apiclient.ErrRequestFailed) {
		return errors.New(a.t("errors.request"))
	}
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.IsUnauthorized() {
			return errors.New(a.t("errors.sessionExpired"))
		}
		if apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
	}
	return err
}
