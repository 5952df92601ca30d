package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/web/templates/layout"
)

// CategoriesData is the designer category management state
type CategoriesData struct {
	layout.PageData
	Categories []model.Category
	Error      string
}

// Categories renders the category list and creation form
func Categories(data CategoriesData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := layout.NewHTML(w)

		h.Raw(`<h1>مدیریت دسته‌بندی‌ها</h1>`)

		h.Raw(`<div class="card"><h2>افزودن دسته‌بندی جدید</h2>`)
		h.Raw(`<form method="post" action="/designer/categories" class="inline-form">`)
		h.Raw(`<label for="name">نام دسته‌بندی</label>`)
		h.Raw(`<input id="name" name="name" type="text" placeholder="نام دسته‌بندی را وارد کنید">`)
		if data.Error != "" {
			h.Raw(`<p class="error">`)
			h.Text(data.Error)
			h.Raw(`</p>`)
		}
		h.Raw(`<button type="submit">افزودن</button></form></div>`)

		h.Raw(`<div class="card"><h2>لیست دسته‌بندی‌ها</h2>`)
		h.Raw(`<table><thead><tr><th>نام دسته‌بندی</th><th>عملیات</th></tr></thead><tbody>`)

		if len(data.Categories) == 0 {
			h.Raw(`<tr><td colspan="2" class="empty">هنوز دسته‌بندی ثبت نشده است</td></tr>`)
		}
		for _, c := range data.Categories {
			h.Raw(`<tr><td>`)
			h.Text(c.Name)
			h.Raw(`</td><td>`)
			h.Raw(`<form class="inline" method="post" action="/designer/categories/`)
			h.Text(c.ID)
			h.Raw(`"><input name="name" type="text" value="`)
			h.Text(c.Name)
			h.Raw(`"><button type="submit">ویرایش</button></form> `)
			h.Raw(`<form class="inline" method="post" action="/designer/categories/`)
			h.Text(c.ID)
			h.Raw(`/delete"><button type="submit" class="danger">حذف</button></form>`)
			h.Raw(`</td></tr>`)
		}

		h.Raw(`</tbody></table></div>`)

		return h.Err()
	})

	return layout.Base(data.PageData, content)
}
