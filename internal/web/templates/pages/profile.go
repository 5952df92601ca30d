package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/web/templates/layout"
)

// ProfileData is the profile page state
type ProfileData struct {
	layout.PageData
	Followers []model.User
	Following []model.User
	Error     string
}

// Profile renders the identity card, the username form and the follow lists
func Profile(data ProfileData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)
		identity := data.Identity

		h.Raw(`<h1>پروفایل</h1>`)

		h.Raw(`<div class="card"><h2>`)
		h.Text(identity.Username)
		h.Raw(`</h2><p>`)
		h.Text(layout.RoleLabel(identity.Role))
		h.Raw(`</p>`)
		if identity.Role == model.RolePlayer {
			h.Raw(`<p>امتیاز کل: `)
			h.Text(strconv.Itoa(identity.Points))
			h.Raw(`</p>`)
		}
		h.Raw(`</div>`)

		// Username update
		h.Raw(`<div class="card"><h2>ویرایش پروفایل</h2>`)
		h.Raw(`<form method="post" action="/profile" class="inline-form">`)
		h.Raw(`<label for="username">نام کاربری</label>`)
		h.Raw(`<input id="username" name="username" type="text" value="`)
		h.Text(identity.Username)
		h.Raw(`">`)
		if data.Error != "" {
			h.Raw(`<p class="error">`)
			h.Text(data.Error)
			h.Raw(`</p>`)
		}
		h.Raw(`<button type="submit">ذخیره</button></form></div>`)

		renderFollowList(h, "دنبال‌کنندگان", data.Followers)
		renderFollowList(h, "دنبال‌شده‌ها", data.Following)

		return h.Err()
	})

	return layout.Base(data.PageData, content)
}

func renderFollowList(h *layout.HTML, title string, users []model.User) {
	h.Raw(`<div class="card"><h2>`)
	h.Text(title)
	h.Raw(` (` + strconv.Itoa(len(users)) + `)</h2><ul class="follow-list">`)
	if len(users) == 0 {
		h.Raw(`<li class="empty">موردی وجود ندارد</li>`)
	}
	for _, user := range users {
		h.Raw(`<li>`)
		h.Text(user.Username)
		h.Raw(` <span class="muted">`)
		h.Text(layout.RoleLabel(user.Role))
		h.Raw(`</span></li>`)
	}
	h.Raw(`</ul></div>`)
}
