package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/web/templates/layout"
)

// LeaderboardData is the ranked player list state
type LeaderboardData struct {
	layout.PageData
	Entries []model.LeaderboardEntry
}

// Leaderboard renders the player ranking table
func Leaderboard(data LeaderboardData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)

		h.Raw(`<h1>جدول امتیازات</h1>`)
		h.Raw(`<div class="card">`)
		h.Raw(`<table><thead><tr><th>رتبه</th><th>بازیکن</th><th>امتیاز</th></tr></thead><tbody>`)

		if len(data.Entries) == 0 {
			h.Raw(`<tr><td colspan="3" class="empty">هنوز امتیازی ثبت نشده است</td></tr>`)
		}
		for i, entry := range data.Entries {
			h.Raw(`<tr><td>` + strconv.Itoa(i+1) + `</td><td>`)
			h.Text(entry.Username)
			h.Raw(`</td><td>` + strconv.Itoa(entry.Points) + `</td></tr>`)
		}

		h.Raw(`</tbody></table></div>`)

		return h.Err()
	})

	return layout.Base(data.PageData, content)
}
