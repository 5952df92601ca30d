package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/web/templates/layout"
)

// DashboardData is the role-aware landing state
type DashboardData struct {
	layout.PageData
}

// Dashboard renders the post-login landing page
func Dashboard(data DashboardData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)
		identity := data.Identity

		h.Raw(`<h1>داشبورد</h1>`)
		h.Raw(`<p>خوش آمدید، `)
		h.Text(identity.Username)
		h.Raw(` (`)
		h.Text(layout.RoleLabel(identity.Role))
		h.Raw(`)</p>`)

		h.Raw(`<div class="cards">`)
		if identity.Role == model.RoleDesigner {
			h.Raw(`<div class="card"><h2>مدیریت سوالات</h2><p>سوالات خود را بسازید و ویرایش کنید.</p>`)
			h.Raw(`<a class="button" href="/designer/questions">سوالات</a></div>`)
			h.Raw(`<div class="card"><h2>دسته‌بندی‌ها</h2><p>دسته‌بندی‌های سوالات را مدیریت کنید.</p>`)
			h.Raw(`<a class="button" href="/designer/categories">دسته‌بندی‌ها</a></div>`)
		} else {
			h.Raw(`<div class="card"><h2>آزمون</h2><p>به سوالات پاسخ دهید و امتیاز بگیرید.</p>`)
			h.Raw(`<a class="button" href="/player/quiz">شروع آزمون</a></div>`)
			h.Raw(`<div class="card"><h2>جدول امتیازات</h2><p>رتبه خود را در میان بازیکنان ببینید.</p>`)
			h.Raw(`<a class="button" href="/player/leaderboard">جدول امتیازات</a></div>`)
			h.Raw(`<div class="card"><h2>امتیاز شما</h2><p class="points">`)
			h.Text(strconv.Itoa(identity.Points))
			h.Raw(`</p></div>`)
		}
		h.Raw(`</div>`)

		return h.Err()
	})

	return layout.Base(data.PageData, content)
}
