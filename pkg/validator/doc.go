// Package validator provides client-side validation for form input before
// it is submitted to the backend. Rules are plain closures paired with a
// field error; Apply runs a set of rules and collects every failure into
// ValidationErrors, the same field-keyed shape the backend returns for
// HTTP 400 responses.
//
//	err := validator.Apply(
//		validator.RequiredString("username", username),
//		validator.MinLenString("username", username, 4),
//		validator.ValidEmail("email", email),
//		validator.MinLenString("password", password, 6),
//		validator.EqualStrings("passwordRepeat", passwordRepeat, password),
//	)
//	var verrs validator.ValidationErrors
//	if errors.As(err, &verrs) {
//		fmt.Println(verrs.Get("username"))
//	}
//
// Messages carry a translation key so the presentation layer can localize
// them through the i18n package.
package validator
