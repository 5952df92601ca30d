package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/web/templates/layout"
)

// QuestionEditData is the state of the question edit form
type QuestionEditData struct {
	layout.PageData
	Question   model.Question
	Categories []model.Category
	Error      string
}

// QuestionEdit renders a pre-filled form for updating a question
func QuestionEdit(data QuestionEditData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)
		q := data.Question

		h.Raw(`<h1>ویرایش سوال</h1>`)

		h.Raw(`<div class="card">`)
		h.Raw(`<form method="post" action="/designer/questions/`)
		h.Text(q.ID)
		h.Raw(`">`)

		h.Raw(`<label for="text">متن سوال</label>`)
		h.Raw(`<input id="text" name="text" type="text" value="`)
		h.Text(q.Text)
		h.Raw(`">`)

		h.Raw(`<label>گزینه‌ها</label><div class="options-grid">`)
		for i := 0; i < 4; i++ {
			h.Raw(`<input name="option` + strconv.Itoa(i) + `" type="text" placeholder="گزینه ` + strconv.Itoa(i+1) + `" value="`)
			if i < len(q.Options) {
				h.Text(q.Options[i])
			}
			h.Raw(`">`)
		}
		h.Raw(`</div>`)

		h.Raw(`<label for="correct_answer">پاسخ صحیح</label>`)
		h.Raw(`<select id="correct_answer" name="correct_answer">`)
		for i := 0; i < 4; i++ {
			h.Raw(`<option value="` + strconv.Itoa(i) + `"`)
			if i == q.CorrectAnswer {
				h.Raw(` selected`)
			}
			h.Raw(`>گزینه ` + strconv.Itoa(i+1) + `</option>`)
		}
		h.Raw(`</select>`)

		h.Raw(`<label for="category_id">دسته‌بندی</label>`)
		h.Raw(`<select id="category_id" name="category_id"><option value="">بدون دسته‌بندی</option>`)
		for _, c := range data.Categories {
			h.Raw(`<option value="`)
			h.Text(c.ID)
			h.Raw(`"`)
			if q.Category != nil && q.Category.ID == c.ID {
				h.Raw(` selected`)
			}
			h.Raw(`>`)
			h.Text(c.Name)
			h.Raw(`</option>`)
		}
		h.Raw(`</select>`)

		h.Raw(`<label for="difficulty">سختی</label>`)
		h.Raw(`<select id="difficulty" name="difficulty">`)
		for _, d := range []int{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
			h.Raw(`<option value="` + strconv.Itoa(d) + `"`)
			if d == q.Difficulty {
				h.Raw(` selected`)
			}
			h.Raw(`>`)
			h.Text(DifficultyLabel(d))
			h.Raw(`</option>`)
		}
		h.Raw(`</select>`)

		if data.Error != "" {
			h.Raw(`<p class="error">`)
			h.Text(data.Error)
			h.Raw(`</p>`)
		}

		h.Raw(`<button type="submit">ذخیره تغییرات</button> `)
		h.Raw(`<a href="/designer/questions">انصراف</a>`)
		h.Raw(`</form></div>`)

		return h.Err()
	})

	return layout.Base(data.PageData, content)
}
