package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// TodoHandler handles todo CRUD requests. Every operation takes the owner
// from the authenticated request context; request bodies never carry owner
// IDs.
type TodoHandler struct {
	todoStore store.TodoStore
	validator *validator.Validate
}

// NewTodoHandler creates a new TodoHandler with the given dependencies.
func NewTodoHandler(todoStore store.TodoStore) *TodoHandler {
	return &TodoHandler{
		todoStore: todoStore,
		validator: validator.New(),
	}
}

// callerID resolves the authenticated user from the request context. A
// missing ID means the route was wired without the auth middleware; respond
// 401 rather than panicking.
func (h *TodoHandler) callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return 0, false
	}
	return userID, true
}

// todoID parses the {id} URL parameter.
func (h *TodoHandler) todoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Todo not found")
		return 0, false
	}
	return id, true
}

// List handles GET /api/todos. It returns all todos owned by the caller,
// newest first.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	todos, err := h.todoStore.ListByUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to list todos", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todos)
}

// Create handles POST /api/todos. The todo is owned by the caller; an
// omitted completed field defaults to false.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req CreateTodoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.ValidationFields(err))
		return
	}

	todo, err := domain.NewTodo(userID, req.Title, req.Completed)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.todoStore.Create(r.Context(), todo); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, todo)
}

// Get handles GET /api/todos/{id}. A todo owned by another user responds
// 404, identically to a missing one.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.todoStore.GetByID(r.Context(), userID, id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todo)
}

// Update handles PUT /api/todos/{id}, replacing the todo's title and
// completion flag.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.todoID(w, r)
	if !ok {
		return
	}

	var req UpdateTodoRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.ValidationFields(err))
		return
	}

	todo, err := h.todoStore.GetByID(r.Context(), userID, id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	todo.Title = req.Title
	todo.Completed = req.Completed
	if err := h.todoStore.Update(r.Context(), todo); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todo)
}

// Delete handles DELETE /api/todos/{id}.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	id, ok := h.todoID(w, r)
	if !ok {
		return
	}

	if err := h.todoStore.Delete(r.Context(), userID, id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
