package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/soalpich/soalpich-web/internal/gateway"
	"github.com/soalpich/soalpich-web/internal/model"
	"github.com/soalpich/soalpich-web/internal/web/middleware"
	"github.com/soalpich/soalpich-web/internal/web/templates/pages"
)

// DesignerHandler handles the question and category management pages
type DesignerHandler struct {
	gateway *gateway.Client
}

// NewDesignerHandler creates a new DesignerHandler
func NewDesignerHandler(gw *gateway.Client) *DesignerHandler {
	return &DesignerHandler{
		gateway: gw,
	}
}

// Questions renders the designer's question list and creation form
func (h *DesignerHandler) Questions(w http.ResponseWriter, r *http.Request) {
	h.renderQuestions(w, r, "")
}

func (h *DesignerHandler) renderQuestions(w http.ResponseWriter, r *http.Request, formError string) {
	sess := middleware.GetSession(r.Context())

	questions, err := h.gateway.Questions(r.Context(), sess.Token)
	if err != nil {
		h.renderError(w, r, "خطا در دریافت سوالات")
		return
	}

	categories, err := h.gateway.Categories(r.Context(), sess.Token)
	if err != nil {
		h.renderError(w, r, "خطا در دریافت دسته‌بندی‌ها")
		return
	}

	data := pages.QuestionsData{
		PageData:   pageData(r, "مدیریت سوالات"),
		Questions:  questions,
		Categories: categories,
		Error:      formError,
	}
	render(w, r, pages.Questions(data))
}

// questionForm pulls a question out of the submitted form. A question
// needs non-empty text, at least two options and a correct answer that
// points at one of them; the second return value carries the first
// validation failure.
func questionForm(r *http.Request) (gateway.QuestionInput, string) {
	text := strings.TrimSpace(r.FormValue("text"))

	var options []string
	for i := 0; i < 4; i++ {
		option := strings.TrimSpace(r.FormValue("option" + strconv.Itoa(i)))
		if option != "" {
			options = append(options, option)
		}
	}

	correctAnswer, _ := strconv.Atoi(r.FormValue("correct_answer"))
	difficulty, _ := strconv.Atoi(r.FormValue("difficulty"))

	input := gateway.QuestionInput{
		Text:          text,
		Options:       options,
		CorrectAnswer: correctAnswer,
		CategoryID:    r.FormValue("category_id"),
		Difficulty:    difficulty,
	}

	switch {
	case text == "":
		return input, "متن سوال الزامی است"
	case len(options) < 2:
		return input, "حداقل دو گزینه لازم است"
	case correctAnswer < 0 || correctAnswer >= len(options):
		return input, "پاسخ صحیح باید یکی از گزینه‌ها باشد"
	case difficulty < model.DifficultyEasy || difficulty > model.DifficultyHard:
		return input, "سطح سختی نامعتبر است"
	}
	return input, ""
}

// CreateQuestion handles the question creation form
func (h *DesignerHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	input, formError := questionForm(r)
	if formError != "" {
		h.renderQuestions(w, r, formError)
		return
	}

	sess := middleware.GetSession(r.Context())
	if _, err := h.gateway.CreateQuestion(r.Context(), sess.Token, input); err != nil {
		h.renderQuestions(w, r, apiErrorMessage(err, "ایجاد سوال ناموفق بود"))
		return
	}

	middleware.SetFlash(w, "success", "سوال با موفقیت ایجاد شد")
	http.Redirect(w, r, "/designer/questions", http.StatusSeeOther)
}

// EditQuestion renders the pre-filled edit form for one question
func (h *DesignerHandler) EditQuestion(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	id := mux.Vars(r)["id"]

	questions, err := h.gateway.Questions(r.Context(), sess.Token)
	if err != nil {
		h.renderError(w, r, "خطا در دریافت سوالات")
		return
	}

	var question *model.Question
	for i := range questions {
		if questions[i].ID == id {
			question = &questions[i]
			break
		}
	}
	if question == nil {
		middleware.SetFlash(w, "error", "سوال یافت نشد")
		http.Redirect(w, r, "/designer/questions", http.StatusSeeOther)
		return
	}

	h.renderQuestionEdit(w, r, *question, "")
}

func (h *DesignerHandler) renderQuestionEdit(w http.ResponseWriter, r *http.Request, question model.Question, formError string) {
	sess := middleware.GetSession(r.Context())

	categories, err := h.gateway.Categories(r.Context(), sess.Token)
	if err != nil {
		h.renderError(w, r, "خطا در دریافت دسته‌بندی‌ها")
		return
	}

	data := pages.QuestionEditData{
		PageData:   pageData(r, "ویرایش سوال"),
		Question:   question,
		Categories: categories,
		Error:      formError,
	}
	render(w, r, pages.QuestionEdit(data))
}

// UpdateQuestion handles the question edit form, with the same
// validation as creation
func (h *DesignerHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	input, formError := questionForm(r)

	// Echo the submitted values back into the form on failure
	submitted := model.Question{
		ID:            id,
		Text:          input.Text,
		Options:       input.Options,
		CorrectAnswer: input.CorrectAnswer,
		Difficulty:    input.Difficulty,
	}
	if input.CategoryID != "" {
		submitted.Category = &model.Category{ID: input.CategoryID}
	}

	if formError != "" {
		h.renderQuestionEdit(w, r, submitted, formError)
		return
	}

	sess := middleware.GetSession(r.Context())
	if _, err := h.gateway.UpdateQuestion(r.Context(), sess.Token, id, input); err != nil {
		h.renderQuestionEdit(w, r, submitted, apiErrorMessage(err, "ویرایش سوال ناموفق بود"))
		return
	}

	middleware.SetFlash(w, "success", "سوال با موفقیت ویرایش شد")
	http.Redirect(w, r, "/designer/questions", http.StatusSeeOther)
}

// DeleteQuestion removes a question
func (h *DesignerHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	id := mux.Vars(r)["id"]

	if err := h.gateway.DeleteQuestion(r.Context(), sess.Token, id); err != nil {
		middleware.SetFlash(w, "error", apiErrorMessage(err, "حذف سوال ناموفق بود"))
	} else {
		middleware.SetFlash(w, "success", "سوال حذف شد")
	}
	http.Redirect(w, r, "/designer/questions", http.StatusSeeOther)
}

// Categories renders the category list and creation form
func (h *DesignerHandler) Categories(w http.ResponseWriter, r *http.Request) {
	h.renderCategories(w, r, "")
}

func (h *DesignerHandler) renderCategories(w http.ResponseWriter, r *http.Request, formError string) {
	sess := middleware.GetSession(r.Context())

	categories, err := h.gateway.Categories(r.Context(), sess.Token)
	if err != nil {
		h.renderError(w, r, "خطا در دریافت دسته‌بندی‌ها")
		return
	}

	data := pages.CategoriesData{
		PageData:   pageData(r, "مدیریت دسته‌بندی‌ها"),
		Categories: categories,
		Error:      formError,
	}
	render(w, r, pages.Categories(data))
}

// CreateCategory handles the category creation form. A name that is
// empty or whitespace-only is rejected without a backend call.
func (h *DesignerHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		h.renderCategories(w, r, "نام دسته‌بندی الزامی است")
		return
	}

	sess := middleware.GetSession(r.Context())
	if _, err := h.gateway.CreateCategory(r.Context(), sess.Token, name); err != nil {
		h.renderCategories(w, r, apiErrorMessage(err, "ایجاد دسته‌بندی ناموفق بود"))
		return
	}

	middleware.SetFlash(w, "success", "دسته‌بندی با موفقیت ایجاد شد")
	http.Redirect(w, r, "/designer/categories", http.StatusSeeOther)
}

// UpdateCategory renames a category from the inline row form
func (h *DesignerHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		h.renderCategories(w, r, "نام دسته‌بندی الزامی است")
		return
	}

	sess := middleware.GetSession(r.Context())
	if _, err := h.gateway.UpdateCategory(r.Context(), sess.Token, id, name); err != nil {
		h.renderCategories(w, r, apiErrorMessage(err, "ویرایش دسته‌بندی ناموفق بود"))
		return
	}

	middleware.SetFlash(w, "success", "دسته‌بندی با موفقیت ویرایش شد")
	http.Redirect(w, r, "/designer/categories", http.StatusSeeOther)
}

// DeleteCategory removes a category
func (h *DesignerHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	id := mux.Vars(r)["id"]

	if err := h.gateway.DeleteCategory(r.Context(), sess.Token, id); err != nil {
		middleware.SetFlash(w, "error", apiErrorMessage(err, "حذف دسته‌بندی ناموفق بود"))
	} else {
		middleware.SetFlash(w, "success", "دسته‌بندی حذف شد")
	}
	http.Redirect(w, r, "/designer/categories", http.StatusSeeOther)
}

func (h *DesignerHandler) renderError(w http.ResponseWriter, r *http.Request, message string) {
	middleware.SetFlash(w, "error", message)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// apiErrorMessage surfaces the backend's message when there is one,
// falling back to a generic notice for transport failures
func apiErrorMessage(err error, fallback string) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
