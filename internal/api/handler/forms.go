package handler

// --- Form schemas ---
//
// Each form is bound from the request body with echo's form binding and
// validated server-side; failures re-render the page with field messages and
// never mutate state. Uniqueness of username/email is checked later by the
// auth service against the user repository.

type registerForm struct {
	Username  string `form:"username"  validate:"required,max=10"`
	Email     string `form:"email"     validate:"required,email"`
	Password  string `form:"password"  validate:"required"`
	Password2 string `form:"password2" validate:"required,eqfield=Password"`
}

type loginForm struct {
	Email    string `form:"email"       validate:"required,email"`
	Password string `form:"password"    validate:"required"`
	Remember bool   `form:"remember_me"`
}

type postForm struct {
	Title    string `form:"title"     validate:"required,min=5,max=140"`
	Content  string `form:"content"   validate:"required,min=10"`
	ImageURL string `form:"image_url" validate:"omitempty,max=500"`
}

type jobForm struct {
	Title       string `form:"title"       validate:"required"`
	Location    string `form:"location"    validate:"required"`
	JobType     string `form:"job_type"    validate:"required"`
	Description string `form:"description" validate:"required"`
}

type contactForm struct {
	Name    string `form:"name"    validate:"required"`
	Email   string `form:"email"   validate:"required,email"`
	Service string `form:"service" validate:"required,oneof=general it engineering healthcare software"`
	Message string `form:"message" validate:"required"`
}
