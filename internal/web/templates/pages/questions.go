package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/web/templates/layout"
)

// QuestionsData is the designer question management state
type QuestionsData struct {
	layout.PageData
	Questions  []model.Question
	Categories []model.Category
	Error      string
}

// DifficultyLabel renders a difficulty level in Persian
func DifficultyLabel(difficulty int) string {
	switch difficulty {
	case model.DifficultyEasy:
		return "آسان"
	case model.DifficultyMedium:
		return "متوسط"
	case model.DifficultyHard:
		return "سخت"
	default:
		return "نامشخص"
	}
}

// Questions renders the designer's question list and creation form
func Questions(data QuestionsData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)

		h.Raw(`<h1>مدیریت سوالات</h1>`)

		// Creation form
		h.Raw(`<div class="card"><h2>افزودن سوال جدید</h2>`)
		h.Raw(`<form method="post" action="/designer/questions">`)

		h.Raw(`<label for="text">متن سوال</label>`)
		h.Raw(`<input id="text" name="text" type="text" placeholder="متن سوال را وارد کنید">`)

		h.Raw(`<label>گزینه‌ها</label><div class="options-grid">`)
		for i := 0; i < 4; i++ {
			h.Raw(`<input name="option` + strconv.Itoa(i) + `" type="text" placeholder="گزینه ` + strconv.Itoa(i+1) + `">`)
		}
		h.Raw(`</div>`)

		h.Raw(`<label for="correct_answer">پاسخ صحیح</label>`)
		h.Raw(`<select id="correct_answer" name="correct_answer">`)
		for i := 0; i < 4; i++ {
			h.Raw(`<option value="` + strconv.Itoa(i) + `">گزینه ` + strconv.Itoa(i+1) + `</option>`)
		}
		h.Raw(`</select>`)

		h.Raw(`<label for="category_id">دسته‌بندی</label>`)
		h.Raw(`<select id="category_id" name="category_id"><option value="">بدون دسته‌بندی</option>`)
		for _, c := range data.Categories {
			h.Raw(`<option value="`)
			h.Text(c.ID)
			h.Raw(`">`)
			h.Text(c.Name)
			h.Raw(`</option>`)
		}
		h.Raw(`</select>`)

		h.Raw(`<label for="difficulty">سختی</label>`)
		h.Raw(`<select id="difficulty" name="difficulty">`)
		for _, d := range []int{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
			h.Raw(`<option value="` + strconv.Itoa(d) + `">`)
			h.Text(DifficultyLabel(d))
			h.Raw(`</option>`)
		}
		h.Raw(`</select>`)

		if data.Error != "" {
			h.Raw(`<p class="error">`)
			h.Text(data.Error)
			h.Raw(`</p>`)
		}

		h.Raw(`<button type="submit">افزودن سوال</button></form></div>`)

		// Question table
		h.Raw(`<div class="card"><h2>لیست سوالات</h2>`)
		h.Raw(`<table><thead><tr><th>متن سوال</th><th>دسته‌بندی</th><th>سختی</th><th>عملیات</th></tr></thead><tbody>`)

		if len(data.Questions) == 0 {
			h.Raw(`<tr><td colspan="4" class="empty">هنوز سوالی ثبت نشده است</td></tr>`)
		}
		for _, q := range data.Questions {
			h.Raw(`<tr><td>`)
			h.Text(q.Text)
			h.Raw(`</td><td>`)
			if q.Category != nil {
				h.Text(q.Category.Name)
			} else {
				h.Raw(`—`)
			}
			h.Raw(`</td><td>`)
			h.Text(DifficultyLabel(q.Difficulty))
			h.Raw(`</td><td>`)
			h.Raw(`<a class="edit" href="/designer/questions/`)
			h.Text(q.ID)
			h.Raw(`/edit">ویرایش</a> `)
			h.Raw(`<form class="inline" method="post" action="/designer/questions/`)
			h.Text(q.ID)
			h.Raw(`/delete"><button type="submit" class="danger">حذف</button></form>`)
			h.Raw(`</td></tr>`)
		}

		h.Raw(`</tbody></table></div>`)

		return h.Err()
	})

	return layout.Base(data.PageData, content)
}
