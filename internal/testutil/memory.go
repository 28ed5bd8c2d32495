// Package testutil provides in-memory repositories and fixtures for tests
// that run without Postgres.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"admin-panel/internal/data/entity"
	"admin-panel/internal/data/repository"

	"github.com/google/uuid"
)

// table mirrors what the SQL repositories do for one relation: ILIKE
// search over a few columns, exact status and column filters, a fixed
// ordering, then LIMIT/OFFSET.
type table[T any] struct {
	rows   map[uuid.UUID]T
	id     func(T) uuid.UUID
	search func(T) []string
	status func(T) string
	column func(T, string) string
	less   func(a, b T) bool
}

func (t *table[T]) matches(row T, filter repository.ListFilter) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		found := false
		for _, s := range t.search(row) {
			if strings.Contains(strings.ToLower(s), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.Status != "" && t.status(row) != filter.Status {
		return false
	}
	for key, want := range filter.Equals {
		if want != "" && t.column(row, key) != want {
			return false
		}
	}
	return true
}

func (t *table[T]) filtered(filter repository.ListFilter) []T {
	var out []T
	for _, row := range t.rows {
		if t.matches(row, filter) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return t.less(out[i], out[j]) })
	return out
}

func (t *table[T]) page(filter repository.ListFilter) []*T {
	all := t.filtered(filter)
	start := min(filter.Offset, len(all))
	end := len(all)
	if filter.Limit > 0 {
		end = min(start+filter.Limit, len(all))
	}

	out := make([]*T, 0, end-start)
	for _, row := range all[start:end] {
		out = append(out, &row)
	}
	return out
}

func (t *table[T]) get(id uuid.UUID) *T {
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	return &row
}

func (t *table[T]) countByStatus() repository.StatusCounts {
	counts := repository.StatusCounts{}
	for _, row := range t.rows {
		counts[t.status(row)]++
	}
	return counts
}

func newestFirst(a, b entity.Base) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.String() > b.ID.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Store holds every in-memory table behind one lock so stats see the same
// rows as the resource repositories.
type Store struct {
	mu sync.Mutex

	// Err, when set, is returned by every repository call.
	Err error

	admins   map[string]entity.Admin
	users    *table[entity.User]
	shops    *table[entity.Shop]
	events   *table[entity.Event]
	services *table[entity.Service]
}

func NewStore() *Store {
	return &Store{
		admins: map[string]entity.Admin{},
		users: &table[entity.User]{
			rows:   map[uuid.UUID]entity.User{},
			id:     func(u entity.User) uuid.UUID { return u.ID },
			search: func(u entity.User) []string { return []string{u.Name, u.Email, deref(u.Phone)} },
			status: func(u entity.User) string { return string(u.Status) },
			column: func(entity.User, string) string { return "" },
			less:   func(a, b entity.User) bool { return newestFirst(a.Base, b.Base) },
		},
		shops: &table[entity.Shop]{
			rows:   map[uuid.UUID]entity.Shop{},
			id:     func(s entity.Shop) uuid.UUID { return s.ID },
			search: func(s entity.Shop) []string { return []string{s.Name, s.Address} },
			status: func(s entity.Shop) string { return string(s.Status) },
			column: func(entity.Shop, string) string { return "" },
			less:   func(a, b entity.Shop) bool { return newestFirst(a.Base, b.Base) },
		},
		events: &table[entity.Event]{
			rows:   map[uuid.UUID]entity.Event{},
			id:     func(e entity.Event) uuid.UUID { return e.ID },
			search: func(e entity.Event) []string { return []string{e.Title, e.Location} },
			status: func(e entity.Event) string { return string(e.Status) },
			column: func(entity.Event, string) string { return "" },
			less: func(a, b entity.Event) bool {
				if !a.StartDate.Equal(b.StartDate) {
					return a.StartDate.After(b.StartDate)
				}
				return a.ID.String() > b.ID.String()
			},
		},
		services: &table[entity.Service]{
			rows:   map[uuid.UUID]entity.Service{},
			id:     func(s entity.Service) uuid.UUID { return s.ID },
			search: func(s entity.Service) []string { return []string{s.Name, s.Category} },
			status: func(s entity.Service) string { return string(s.Status) },
			column: func(s entity.Service, key string) string {
				if key == "category" {
					return s.Category
				}
				return ""
			},
			less: func(a, b entity.Service) bool { return newestFirst(a.Base, b.Base) },
		},
	}
}

// Repository exposes the store through the repository interfaces.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Admin:   &adminRepo{s},
		User:    &userRepo{s},
		Shop:    &shopRepo{s},
		Event:   &eventRepo{s},
		Service: &serviceRepo{s},
		Stats:   &statsRepo{s},
	}
}

// ------------- admins -------------

type adminRepo struct{ s *Store }

func (r *adminRepo) FindByEmail(_ context.Context, email string) (*entity.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	admin, ok := r.s.admins[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return &admin, nil
}

func (r *adminRepo) Upsert(_ context.Context, admin *entity.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}

	key := strings.ToLower(admin.Email)
	if _, ok := r.s.admins[key]; !ok {
		r.s.admins[key] = *admin
	}
	return nil
}

// ------------- users -------------

type userRepo struct{ s *Store }

func (r *userRepo) emailTaken(email string, except uuid.UUID) bool {
	for id, u := range r.s.users.rows {
		if id != except && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}

	if r.emailTaken(user.Email, uuid.Nil) {
		return fmt.Errorf("create user %s: %w", user.Email, repository.ErrDuplicate)
	}
	r.s.users.rows[user.ID] = *user
	return nil
}

func (r *userRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return r.s.users.get(id), nil
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	for _, u := range r.s.users.rows {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindAll(_ context.Context, filter repository.ListFilter) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return r.s.users.page(filter), nil
}

func (r *userRepo) CountAll(_ context.Context, filter repository.ListFilter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.s.users.filtered(filter))), nil
}

func (r *userRepo) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}

	if _, ok := r.s.users.rows[user.ID]; !ok {
		return fmt.Errorf("update user %s: %w", user.ID, repository.ErrNotFound)
	}
	if r.emailTaken(user.Email, user.ID) {
		return fmt.Errorf("update user %s: %w", user.ID, repository.ErrDuplicate)
	}
	r.s.users.rows[user.ID] = *user
	return nil
}

func (r *userRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.UserStatus) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	user, ok := r.s.users.rows[id]
	if !ok {
		return nil, nil
	}
	user.Status = status
	r.s.users.rows[id] = user
	return &user, nil
}

func (r *userRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}

	if _, ok := r.s.users.rows[id]; !ok {
		return fmt.Errorf("delete user %s: %w", id, repository.ErrNotFound)
	}
	delete(r.s.users.rows, id)
	return nil
}

// ------------- shops, events, services -------------

// crud implements the plain create/read/update/delete shape shared by
// shops, events and services.
type crud[T any] struct {
	s     *Store
	table func() *table[T]
	kind  string
}

func (c crud[T]) Create(_ context.Context, row *T) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.Err != nil {
		return c.s.Err
	}

	t := c.table()
	t.rows[t.id(*row)] = *row
	return nil
}

func (c crud[T]) FindByID(_ context.Context, id uuid.UUID) (*T, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.Err != nil {
		return nil, c.s.Err
	}
	return c.table().get(id), nil
}

func (c crud[T]) FindAll(_ context.Context, filter repository.ListFilter) ([]*T, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.Err != nil {
		return nil, c.s.Err
	}
	return c.table().page(filter), nil
}

func (c crud[T]) CountAll(_ context.Context, filter repository.ListFilter) (int64, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.Err != nil {
		return 0, c.s.Err
	}
	return int64(len(c.table().filtered(filter))), nil
}

func (c crud[T]) Update(_ context.Context, row *T) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.Err != nil {
		return c.s.Err
	}

	t := c.table()
	id := t.id(*row)
	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("update %s %s: %w", c.kind, id, repository.ErrNotFound)
	}
	t.rows[id] = *row
	return nil
}

func (c crud[T]) Delete(_ context.Context, id uuid.UUID) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.Err != nil {
		return c.s.Err
	}

	t := c.table()
	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("delete %s %s: %w", c.kind, id, repository.ErrNotFound)
	}
	delete(t.rows, id)
	return nil
}

type shopRepo struct{ s *Store }

func (r *shopRepo) crud() crud[entity.Shop] {
	return crud[entity.Shop]{s: r.s, table: func() *table[entity.Shop] { return r.s.shops }, kind: "shop"}
}

func (r *shopRepo) Create(ctx context.Context, shop *entity.Shop) error {
	return r.crud().Create(ctx, shop)
}

func (r *shopRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return r.crud().FindByID(ctx, id)
}

func (r *shopRepo) FindAll(ctx context.Context, filter repository.ListFilter) ([]*entity.Shop, error) {
	return r.crud().FindAll(ctx, filter)
}

func (r *shopRepo) CountAll(ctx context.Context, filter repository.ListFilter) (int64, error) {
	return r.crud().CountAll(ctx, filter)
}

func (r *shopRepo) Update(ctx context.Context, shop *entity.Shop) error {
	return r.crud().Update(ctx, shop)
}

func (r *shopRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.crud().Delete(ctx, id)
}

type eventRepo struct{ s *Store }

func (r *eventRepo) crud() crud[entity.Event] {
	return crud[entity.Event]{s: r.s, table: func() *table[entity.Event] { return r.s.events }, kind: "event"}
}

func (r *eventRepo) Create(ctx context.Context, event *entity.Event) error {
	return r.crud().Create(ctx, event)
}

func (r *eventRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	return r.crud().FindByID(ctx, id)
}

func (r *eventRepo) FindAll(ctx context.Context, filter repository.ListFilter) ([]*entity.Event, error) {
	return r.crud().FindAll(ctx, filter)
}

func (r *eventRepo) CountAll(ctx context.Context, filter repository.ListFilter) (int64, error) {
	return r.crud().CountAll(ctx, filter)
}

func (r *eventRepo) Update(ctx context.Context, event *entity.Event) error {
	return r.crud().Update(ctx, event)
}

func (r *eventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.crud().Delete(ctx, id)
}

type serviceRepo struct{ s *Store }

func (r *serviceRepo) crud() crud[entity.Service] {
	return crud[entity.Service]{s: r.s, table: func() *table[entity.Service] { return r.s.services }, kind: "service"}
}

func (r *serviceRepo) Create(ctx context.Context, service *entity.Service) error {
	return r.crud().Create(ctx, service)
}

func (r *serviceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	return r.crud().FindByID(ctx, id)
}

func (r *serviceRepo) FindAll(ctx context.Context, filter repository.ListFilter) ([]*entity.Service, error) {
	return r.crud().FindAll(ctx, filter)
}

func (r *serviceRepo) CountAll(ctx context.Context, filter repository.ListFilter) (int64, error) {
	return r.crud().CountAll(ctx, filter)
}

func (r *serviceRepo) Update(ctx context.Context, service *entity.Service) error {
	return r.crud().Update(ctx, service)
}

func (r *serviceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.crud().Delete(ctx, id)
}

// ------------- stats -------------

type statsRepo struct{ s *Store }

func (r *statsRepo) count(fn func() repository.StatusCounts) (repository.StatusCounts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return fn(), nil
}

func (r *statsRepo) CountUsersByStatus(context.Context) (repository.StatusCounts, error) {
	return r.count(r.s.users.countByStatus)
}

func (r *statsRepo) CountShopsByStatus(context.Context) (repository.StatusCounts, error) {
	return r.count(r.s.shops.countByStatus)
}

func (r *statsRepo) CountEventsByStatus(context.Context) (repository.StatusCounts, error) {
	return r.count(r.s.events.countByStatus)
}

func (r *statsRepo) CountServicesByStatus(context.Context) (repository.StatusCounts, error) {
	return r.count(r.s.services.countByStatus)
}
