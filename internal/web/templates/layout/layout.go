// Package layout holds the page chrome shared by every view: the HTML
// shell, the navigation bar and flash messages. Components are built
// directly on the templ runtime.
package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/soalpich/soalpich-web/internal/model"
)

// FlashMessage is a one-shot notice shown on the next page load
type FlashMessage struct {
	Type    string // "success", "error" or "info"
	Message string
}

// PageData carries the state every page needs
type PageData struct {
	Title    string
	Identity *model.Identity
	Flash    *FlashMessage
}

// HTML accumulates markup and defers error handling until the end,
// so components read as a flat sequence of writes.
type HTML struct {
	w   io.Writer
	err error
}

// NewHTML wraps a writer
func NewHTML(w io.Writer) *HTML {
	return &HTML{w: w}
}

// Raw writes markup verbatim
func (h *HTML) Raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

// Text writes HTML-escaped text, safe in element bodies and attributes
func (h *HTML) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// F writes formatted markup; string arguments must already be escaped
func (h *HTML) F(format string, args ...any) {
	if h.err == nil {
		_, h.err = fmt.Fprintf(h.w, format, args...)
	}
}

// Err returns the first write error
func (h *HTML) Err() error {
	return h.err
}

// RoleLabel renders a role in Persian
func RoleLabel(role model.Role) string {
	if role == model.RoleDesigner {
		return "طراح"
	}
	return "بازیکن"
}

// Base wraps content in the full HTML document with navigation
func Base(data PageData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(w)

		h.Raw(`<!DOCTYPE html><html lang="fa" dir="rtl"><head><meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Raw(`<title>`)
		h.Text(data.Title)
		h.Raw(` | سوال‌پیچ</title>`)
		h.Raw(`<link rel="stylesheet" href="/static/style.css"></head><body>`)

		renderNav(h, data.Identity)

		if data.Flash != nil {
			h.Raw(`<div class="flash flash-`)
			h.Text(data.Flash.Type)
			h.Raw(`">`)
			h.Text(data.Flash.Message)
			h.Raw(`</div>`)
		}

		h.Raw(`<main class="container">`)
		if h.Err() != nil {
			return h.Err()
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		h.Raw(`</main></body></html>`)

		return h.Err()
	})
}

func renderNav(h *HTML, identity *model.Identity) {
	h.Raw(`<nav><a class="brand" href="/">سوال‌پیچ</a><ul>`)

	if identity == nil {
		h.Raw(`<li><a href="/login">ورود</a></li>`)
		h.Raw(`<li><a href="/register">ثبت‌نام</a></li>`)
	} else {
		h.Raw(`<li><a href="/dashboard">داشبورد</a></li>`)
		if identity.Role == model.RoleDesigner {
			h.Raw(`<li><a href="/designer/questions">مدیریت سوالات</a></li>`)
			h.Raw(`<li><a href="/designer/categories">دسته‌بندی‌ها</a></li>`)
		} else {
			h.Raw(`<li><a href="/player/quiz">آزمون</a></li>`)
			h.Raw(`<li><a href="/player/leaderboard">جدول امتیازات</a></li>`)
		}
		h.Raw(`<li><a href="/users">کاربران</a></li>`)
		h.Raw(`<li><a href="/profile">`)
		h.Text(identity.Username)
		h.Raw(`</a></li>`)
		h.Raw(`<li><form method="post" action="/logout"><button type="submit">خروج</button></form></li>`)
	}

	h.Raw(`</ul></nav>`)
}
