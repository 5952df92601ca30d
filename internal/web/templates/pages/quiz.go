package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/web/templates/layout"
)

// QuizData is the player quiz state: either a question to answer or the
// result of the last submission
type QuizData struct {
	layout.PageData
	Question   *model.Question
	Result     *model.AnswerResult
	Difficulty int
	Error      string
}

// Quiz renders the question form, the submission result, or an empty notice
func Quiz(data QuizData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)

		h.Raw(`<h1>آزمون</h1>`)

		// Difficulty filter
		h.Raw(`<form method="get" action="/player/quiz" class="inline-form">`)
		h.Raw(`<label for="difficulty">سختی</label>`)
		h.Raw(`<select id="difficulty" name="difficulty">`)
		h.Raw(`<option value="">همه</option>`)
		for _, d := range []int{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
			h.Raw(`<option value="` + strconv.Itoa(d) + `"`)
			if data.Difficulty == d {
				h.Raw(` selected`)
			}
			h.Raw(`>`)
			h.Text(DifficultyLabel(d))
			h.Raw(`</option>`)
		}
		h.Raw(`</select><button type="submit">اعمال</button></form>`)

		if data.Error != "" {
			h.Raw(`<p class="error">`)
			h.Text(data.Error)
			h.Raw(`</p>`)
		}

		switch {
		case data.Result != nil:
			h.Raw(`<div class="card result">`)
			if data.Result.Correct {
				h.Raw(`<h2 class="correct">پاسخ درست بود!</h2>`)
				h.Raw(`<p>امتیاز کسب‌شده: `)
				h.Text(strconv.Itoa(data.Result.PointsEarned))
				h.Raw(`</p>`)
			} else {
				h.Raw(`<h2 class="wrong">پاسخ نادرست بود</h2>`)
			}
			h.Raw(`<a class="button" href="/player/quiz">سوال بعدی</a></div>`)

		case data.Question != nil:
			h.Raw(`<div class="card"><h2>`)
			h.Text(data.Question.Text)
			h.Raw(`</h2>`)
			h.Raw(`<form method="post" action="/player/quiz/`)
			h.Text(data.Question.ID)
			h.Raw(`/submit">`)
			for i, option := range data.Question.Options {
				idx := strconv.Itoa(i)
				h.Raw(`<div class="option"><input type="radio" id="option-` + idx + `" name="answer" value="` + idx + `">`)
				h.Raw(`<label for="option-` + idx + `">`)
				h.Text(option)
				h.Raw(`</label></div>`)
			}
			h.Raw(`<button type="submit">ثبت پاسخ</button></form></div>`)

		default:
			h.Raw(`<div class="card"><p class="empty">سوالی برای نمایش وجود ندارد</p></div>`)
		}

		return h.Err()
	})

	return layout.Base(data.PageData, content)
}
