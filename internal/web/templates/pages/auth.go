package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/soalpich/soalpich-web/internal/web/templates/layout"
)

// LoginData is the login page state
type LoginData struct {
	layout.PageData
	Username string
	Error    string
	Next     string
}

// Login renders the login form
func Login(data LoginData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)

		h.Raw(`<div class="card auth-card"><h1>ورود به سوال‌پیچ</h1>`)
		h.Raw(`<form method="post" action="/login">`)

		if data.Next != "" {
			h.Raw(`<input type="hidden" name="next" value="`)
			h.Text(data.Next)
			h.Raw(`">`)
		}

		h.Raw(`<label for="username">نام کاربری</label>`)
		h.Raw(`<input id="username" name="username" type="text" placeholder="نام کاربری خود را وارد کنید" value="`)
		h.Text(data.Username)
		h.Raw(`">`)

		h.Raw(`<label for="password">رمز عبور</label>`)
		h.Raw(`<input id="password" name="password" type="password" placeholder="رمز عبور خود را وارد کنید">`)

		if data.Error != "" {
			h.Raw(`<p class="error">`)
			h.Text(data.Error)
			h.Raw(`</p>`)
		}

		h.Raw(`<button type="submit">ورود</button></form>`)
		h.Raw(`<p class="muted">حساب ندارید؟ <a href="/register">ثبت‌نام کنید</a></p>`)
		h.Raw(`</div>`)

		return h.Err()
	})

	return layout.Base(data.PageData, content)
}

// RegisterData is the registration page state
type RegisterData struct {
	layout.PageData
	Username    string
	Role        string
	Error       string
	FieldErrors map[string]string
}

// Register renders the registration form
func Register(data RegisterData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)

		fieldError := func(field string) {
			if msg, ok := data.FieldErrors[field]; ok {
				h.Raw(`<p class="field-error">`)
				h.Text(msg)
				h.Raw(`</p>`)
			}
		}

		h.Raw(`<div class="card auth-card"><h1>ثبت‌نام در سوال‌پیچ</h1>`)
		h.Raw(`<form method="post" action="/register">`)

		h.Raw(`<label for="username">نام کاربری</label>`)
		h.Raw(`<input id="username" name="username" type="text" value="`)
		h.Text(data.Username)
		h.Raw(`">`)
		fieldError("username")

		h.Raw(`<label for="password">رمز عبور</label>`)
		h.Raw(`<input id="password" name="password" type="password">`)
		fieldError("password")

		h.Raw(`<label for="password_confirm">تکرار رمز عبور</label>`)
		h.Raw(`<input id="password_confirm" name="password_confirm" type="password">`)
		fieldError("password_confirm")

		h.Raw(`<label for="role">نقش</label>`)
		h.Raw(`<select id="role" name="role">`)
		for _, role := range []struct{ value, label string }{
			{"player", "بازیکن"},
			{"designer", "طراح"},
		} {
			h.Raw(`<option value="`)
			h.Text(role.value)
			h.Raw(`"`)
			if data.Role == role.value {
				h.Raw(` selected`)
			}
			h.Raw(`>`)
			h.Text(role.label)
			h.Raw(`</option>`)
		}
		h.Raw(`</select>`)
		fieldError("role")

		if data.Error != "" {
			h.Raw(`<p class="error">`)
			h.Text(data.Error)
			h.Raw(`</p>`)
		}

		h.Raw(`<button type="submit">ثبت‌نام</button></form>`)
		h.Raw(`<p class="muted">حساب دارید؟ <a href="/login">وارد شوید</a></p>`)
		h.Raw(`</div>`)

		return h.Err()
	})

	return layout.Base(data.PageData, content)
}
