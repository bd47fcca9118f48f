package api

import (
	"context"
	"sync"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// fakeUserStore is an in-memory store.UserStore for handler tests.
type fakeUserStore struct {
	mu      sync.Mutex
	nextID  int64
	byID    map[int64]*domain.User
	byEmail map[string]*domain.User

	// createErr, when set, is returned from Create instead of storing.
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:    make(map[int64]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

var _ store.UserStore = (*fakeUserStore)(nil)

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byEmail[user.Email]; exists {
		return store.ErrEmailExists
	}

	f.nextID++
	user.ID = f.nextID
	copied := *user
	f.byID[user.ID] = &copied
	f.byEmail[user.Email] = &copied
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// fakeTodoStore is an in-memory store.TodoStore for handler tests. Like the
// real store, single-row operations are scoped by owner.
type fakeTodoStore struct {
	mu     sync.Mutex
	nextID int64
	todos  map[int64]*domain.Todo

	// listErr, when set, is returned from ListByUser.
	listErr error
}

func newFakeTodoStore() *fakeTodoStore {
	return &fakeTodoStore{todos: make(map[int64]*domain.Todo)}
}

var _ store.TodoStore = (*fakeTodoStore)(nil)

func (f *fakeTodoStore) Create(ctx context.Context, todo *domain.Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	todo.ID = f.nextID
	copied := *todo
	f.todos[todo.ID] = &copied
	return nil
}

func (f *fakeTodoStore) GetByID(ctx context.Context, userID, id int64) (*domain.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	todo, ok := f.todos[id]
	if !ok || todo.UserID != userID {
		return nil, store.ErrTodoNotFound
	}
	copied := *todo
	return &copied, nil
}

func (f *fakeTodoStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}

	todos := []*domain.Todo{}
	// Newest first, matching the SQL ORDER BY.
	for id := f.nextID; id >= 1; id-- {
		if todo, ok := f.todos[id]; ok && todo.UserID == userID {
			copied := *todo
			todos = append(todos, &copied)
		}
	}
	return todos, nil
}

func (f *fakeTodoStore) Update(ctx context.Context, todo *domain.Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.todos[todo.ID]
	if !ok || existing.UserID != todo.UserID {
		return store.ErrTodoNotFound
	}
	copied := *todo
	f.todos[todo.ID] = &copied
	return nil
}

func (f *fakeTodoStore) Delete(ctx context.Context, userID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	todo, ok := f.todos[id]
	if !ok || todo.UserID != userID {
		return store.ErrTodoNotFound
	}
	delete(f.todos, id)
	return nil
}
