package handler

type registerForm struct {
	Name     string `form:"name"     validate:"required,max=100"`
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type loginForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// entryForm is shared by the create and edit forms. Date accepts
// DD/MM/YYYY or the YYYY-MM-DD value of a date input.
type entryForm struct {
	Title       string `form:"title"       validate:"required,max=30"`
	Description string `form:"description" validate:"required"`
	Kind        string `form:"kind"        validate:"omitempty,oneof=task note"`
	Date        string `form:"date"        validate:"required"`
}
