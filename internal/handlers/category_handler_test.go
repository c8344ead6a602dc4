// internal/handlers/category_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"

	"go_trivia_api/internal/handlers"
	"go_trivia_api/internal/model"
	"go_trivia_api/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_GetCategories(t *testing.T) {
	newRouter := func(t *testing.T) (http.Handler, *mocks.CategoryService) {
		categoryService := mocks.NewCategoryService(t)
		return newTestRouter(handlers.Handlers{
			Category: handlers.NewCategoryHandler(categoryService, testLogger),
			Question: handlers.NewQuestionHandler(mocks.NewQuestionService(t), testLogger),
			Quiz:     handlers.NewQuizHandler(mocks.NewQuizService(t), testLogger),
		}), categoryService
	}

	t.Run("Success", func(t *testing.T) {
		router, categoryService := newRouter(t)
		categoryService.On("ListCategories", mock.Anything).
			Return(model.CategoryMap{1: "Science", 2: "Art"}, nil).Once()

		rr := doRequest(t, router, http.MethodGet, "/categories", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Success    bool              `json:"success"`
			Categories map[string]string `json:"categories"`
		}
		decodeBody(t, rr, &body)
		assert.True(t, body.Success)
		assert.Equal(t, map[string]string{"1": "Science", "2": "Art"}, body.Categories)
	})

	t.Run("Fail - store failure", func(t *testing.T) {
		router, categoryService := newRouter(t)
		categoryService.On("ListCategories", mock.Anything).Return(nil, model.ErrUnprocessable).Once()

		rr := doRequest(t, router, http.MethodGet, "/categories", nil)
		assertErrorEnvelope(t, rr, http.StatusUnprocessableEntity)
	})

	t.Run("Fail - unknown route", func(t *testing.T) {
		router, _ := newRouter(t)
		rr := doRequest(t, router, http.MethodGet, "/no-such-route", nil)
		assertErrorEnvelope(t, rr, http.StatusNotFound)
	})
}

func TestRouter_RecoversPanics(t *testing.T) {
	categoryService := mocks.NewCategoryService(t)
	categoryService.On("ListCategories", mock.Anything).Run(func(args mock.Arguments) {
		panic("boom")
	}).Return(nil, nil).Once()

	router := newTestRouter(handlers.Handlers{
		Category: handlers.NewCategoryHandler(categoryService, testLogger),
		Question: handlers.NewQuestionHandler(mocks.NewQuestionService(t), testLogger),
		Quiz:     handlers.NewQuizHandler(mocks.NewQuizService(t), testLogger),
	})

	rr := doRequest(t, router, http.MethodGet, "/categories", nil)
	assertErrorEnvelope(t, rr, http.StatusInternalServerError)
	assert.NotContains(t, rr.Body.String(), "boom")
}
