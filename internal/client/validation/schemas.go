package validation

import "regexp"

var (
	strictEmail   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	looseEmail    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	hasUpper      = regexp.MustCompile(`[A-Z]`)
	hasLower      = regexp.MustCompile(`[a-z]`)
	hasDigit      = regexp.MustCompile(`\d`)
	hasSpecial    = regexp.MustCompile(`[^A-Za-z0-9]`)
	uploadTypes   = []string{"image/jpeg", "image/png", "application/pdf"}
	roleNames     = []string{"user", "admin"}
	articleStates = []string{"draft", "published"}
)

func nameField(name, label string) Field {
	return Field{Name: name, Trim: true, Rules: []Rule{
		Required(label + " is required"),
		MinLen(2, "Too short"),
	}}
}

// SignupSchema covers self-registration; the password is set later from the
// emailed link.
var SignupSchema = Schema{Fields: []Field{
	nameField("firstName", "First Name"),
	nameField("lastName", "Last Name"),
	{Name: "email", Trim: true, Rules: []Rule{
		Required("Email is required"),
		Email("Invalid email format"),
		Pattern(strictEmail, "Invalid email format or contains forbidden characters"),
	}},
}}

var LoginSchema = Schema{Fields: []Field{
	{Name: "email", Trim: true, Rules: []Rule{
		Required("Email is required"),
		Email("Invalid email format"),
		Pattern(looseEmail, "Invalid email format"),
	}},
	{Name: "password", Trim: true, Rules: []Rule{
		Required("Password is required"),
		MinLen(6, "Password must be at least 6 characters"),
	}},
}}

var ForgotPasswordSchema = Schema{Fields: []Field{
	{Name: "email", Trim: true, Rules: []Rule{
		Required("Email is not valid."),
		Pattern(strictEmail, "Email is not valid."),
	}},
}}

// PasswordSchema is shared by the reset and first-time setup flows.
var PasswordSchema = Schema{Fields: []Field{
	{Name: "password", Rules: []Rule{
		Required("Password is required"),
		MinLen(8, "At least 8 characters"),
		Pattern(hasUpper, "Must include an uppercase letter"),
		Pattern(hasLower, "Must include a lowercase letter"),
		Pattern(hasDigit, "Must include a number"),
		Pattern(hasSpecial, "Must include a special character"),
	}},
	{Name: "confirmPassword", Rules: []Rule{
		Required("Confirm password is required"),
		Matches("password", "Passwords do not match"),
	}},
}}

var ArticleSchema = Schema{Fields: []Field{
	{Name: "title", Trim: true, Rules: []Rule{Required("Title is required")}},
	{Name: "content", Trim: true, Rules: []Rule{Required("Content is required")}},
	{Name: "status", Rules: []Rule{OneOf("Status must be draft or published", articleStates...)}},
	{Name: "imageFile", Trim: true, Rules: []Rule{FileType("Only JPG, PNG or PDF allowed", uploadTypes...)}},
}}

var CreateUserSchema = Schema{Fields: []Field{
	nameField("firstName", "First Name"),
	nameField("lastName", "Last Name"),
	{Name: "email", Trim: true, Rules: []Rule{
		Required("Email is required"),
		Pattern(strictEmail, "Email must have a valid domain (e.g., .com, .org)"),
	}},
	{Name: "role", Rules: []Rule{
		Required("Role is required"),
		OneOf("role must be one of the following values: user, admin", roleNames...),
	}},
}}

var EditUserSchema = Schema{Fields: []Field{
	{Name: "firstName", Trim: true, Rules: []Rule{Required("First name is required"), MinLen(2, "Minimum 2 characters")}},
	{Name: "lastName", Trim: true, Rules: []Rule{Required("Last name is required"), MinLen(2, "Minimum 2 characters")}},
	{Name: "email", Trim: true, Rules: []Rule{Required("Email is required"), Email("Enter a valid email")}},
	{Name: "role", Rules: []Rule{
		Required("Role is required"),
		OneOf("role must be one of the following values: user, admin", roleNames...),
	}},
}}

var ProfileSchema = Schema{Fields: []Field{
	{Name: "firstName", Trim: true, Rules: []Rule{Required("First name is required"), MinLen(2, "Minimum 2 characters")}},
	{Name: "lastName", Trim: true, Rules: []Rule{Required("Last name is required"), MinLen(2, "Minimum 2 characters")}},
	{Name: "email", Trim: true, Rules: []Rule{Required("Email is required"), Email("Enter a valid email")}},
}}
