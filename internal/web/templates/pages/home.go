// Package pages holds one templ component per view. All user-facing
// strings are Persian; markup is right-to-left.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/soalpich/soalpich-web/internal/web/templates/layout"
)

// HomeData is the landing page state
type HomeData struct {
	layout.PageData
}

// Home renders the landing page with the two role entries
func Home(data HomeData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)

		h.Raw(`<h1>به سوال‌پیچ خوش آمدید</h1>`)
		h.Raw(`<p>مسابقه دانش و سرعت؛ سوال طراحی کنید یا به سوالات پاسخ دهید.</p>`)

		if data.Identity == nil {
			h.Raw(`<div class="cards">`)
			h.Raw(`<div class="card"><h2>طراح هستید؟</h2><p>سوالات و دسته‌بندی‌های خود را بسازید.</p>`)
			h.Raw(`<a class="button" href="/login?type=designer">ورود به عنوان طراح</a></div>`)
			h.Raw(`<div class="card"><h2>بازیکن هستید؟</h2><p>به سوالات پاسخ دهید و امتیاز جمع کنید.</p>`)
			h.Raw(`<a class="button" href="/login?type=player">ورود به عنوان بازیکن</a></div>`)
			h.Raw(`</div>`)
		} else {
			h.Raw(`<p><a class="button" href="/dashboard">رفتن به داشبورد</a></p>`)
		}

		return h.Err()
	})

	return layout.Base(data.PageData, content)
}
