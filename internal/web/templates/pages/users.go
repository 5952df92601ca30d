package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/web/templates/layout"
)

// UsersData is the user directory state
type UsersData struct {
	layout.PageData
	Users     []model.User
	Following map[string]bool
}

// Users renders the user directory with follow/unfollow actions
func Users(data UsersData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)

		h.Raw(`<h1>لیست کاربران</h1>`)
		h.Raw(`<div class="card">`)
		h.Raw(`<table><thead><tr><th>کاربر</th><th>نقش</th><th>عملیات</th></tr></thead><tbody>`)

		if len(data.Users) == 0 {
			h.Raw(`<tr><td colspan="3" class="empty">هیچ کاربری یافت نشد</td></tr>`)
		}
		for _, user := range data.Users {
			h.Raw(`<tr><td>`)
			h.Text(user.Username)
			h.Raw(`</td><td>`)
			h.Text(layout.RoleLabel(user.Role))
			h.Raw(`</td><td>`)

			action := "/users/" + user.ID + "/follow"
			label := "دنبال کردن"
			class := ""
			if data.Following[user.ID] {
				action = "/users/" + user.ID + "/unfollow"
				label = "لغو دنبال کردن"
				class = ` class="outline"`
			}
			h.Raw(`<form class="inline" method="post" action="`)
			h.Text(action)
			h.Raw(`"><input type="hidden" name="role" value="`)
			h.Text(string(user.Role))
			h.Raw(`"><button type="submit"` + class + `>`)
			h.Text(label)
			h.Raw(`</button></form>`)

			h.Raw(`</td></tr>`)
		}

		h.Raw(`</tbody></table></div>`)

		return h.Err()
	})

	return layout.Base(data.PageData, content)
}
