package model

const (
	SignupFormID         = "signupForm"
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm-password"

	SignupGroupClass = "form-group-signup"
	SignupSlotClass  = "error-message-signup"
)

// SignupForm returns the canonical signup form description.
func SignupForm() FormModel {
	return FormModel{
		ID:         SignupFormID,
		Title:      "Sign up",
		GroupClass: SignupGroupClass,
		SlotClass:  SignupSlotClass,
		Fields: []Field{
			{
				Name:        FieldUsername,
				Type:        InputTypeText,
				Required:    true,
				Label:       "Username",
				Placeholder: "letters, numbers, underscores",
				ErrorSlot:   "usernameError",
				Validations: []ValidationRule{MinLength("3"), MaxLength("20")},
			},
			{
				Name:      FieldEmail,
				Type:      InputTypeEmail,
				Required:  true,
				Label:     "Email",
				ErrorSlot: "emailError",
			},
			{
				Name:        FieldPassword,
				Type:        InputTypePassword,
				Required:    true,
				Label:       "Password",
				ErrorSlot:   "passwordError",
				Validations: []ValidationRule{MinLength("8")},
			},
			{
				Name:      FieldConfirmPassword,
				Type:      InputTypePassword,
				Required:  true,
				Label:     "Confirm password",
				ErrorSlot: "confirmPasswordError",
			},
		},
	}
}
