package customers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/recordkeeper/internal/common"
	"github.com/dmitrijs2005/recordkeeper/internal/logging"
)

// SortColumn names a sortable customer attribute.
type SortColumn string

const (
	ColumnID        SortColumn = "id"
	ColumnName      SortColumn = "name"
	ColumnEmail     SortColumn = "email"
	ColumnPhone     SortColumn = "phone"
	ColumnType      SortColumn = "customer_type"
	ColumnCreatedAt SortColumn = "created_at"
)

// SortState is the remembered "current sort" of the collection.
type SortState struct {
	Column     SortColumn
	Descending bool
}

// Service owns the customer collection and its transient view state (the
// active sort). Not safe for concurrent use without the internal mutex,
// which every exported method takes.
type Service struct {
	mu        sync.Mutex
	repo      Repository
	log       logging.Logger
	customers []Customer
	sort      SortState
}

func NewService(repo Repository, log logging.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "customers"),
	}
}

// Load reads the customer collection from the repository. Call once at
// startup.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = s.repo.LoadAll(ctx)
	s.log.Debug(ctx, "customers loaded", "count", len(s.customers))
}

// Add appends a new record. The name must not collide with any existing
// record after trimming and case-folding; unknown customer types coerce to
// regular. On a persistence failure the record stays in memory and the
// error tells the caller the change may not survive a restart.
func (s *Service) Add(ctx context.Context, name, email, phone, address string, customerType CustomerType) (*Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.duplicateName(name, 0) {
		return nil, common.ErrorDuplicateName
	}

	c := Customer{
		ID:           nextID(s.customers),
		Name:         name,
		Email:        email,
		Phone:        phone,
		Address:      address,
		CustomerType: ParseCustomerType(string(customerType)),
		CreatedAt:    time.Now(),
	}
	s.customers = append(s.customers, c)

	if err := s.persist(ctx); err != nil {
		return &c, err
	}
	s.log.Info(ctx, "customer added", "id", c.ID, "name", c.Name)
	return &c, nil
}

// Update overwrites the fields of the record with the given id. The
// duplicate-name check excludes the record being updated.
func (s *Service) Update(ctx context.Context, id int, name, email, phone, address string, customerType CustomerType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.duplicateName(name, id) {
		return common.ErrorDuplicateName
	}

	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		now := time.Now()
		c := &s.customers[i]
		c.Name = name
		c.Email = email
		c.Phone = phone
		c.Address = address
		c.CustomerType = ParseCustomerType(string(customerType))
		c.UpdatedAt = &now

		if err := s.persist(ctx); err != nil {
			return err
		}
		s.log.Info(ctx, "customer updated", "id", id)
		return nil
	}
	return common.ErrorNotFound
}

// Delete removes every record with the given id (expected exactly one) and
// persists the remainder.
func (s *Service) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	s.customers = filtered

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "customer deleted", "id", id)
	return nil
}

// Search returns all records where the lower-cased keyword is a substring
// of the name, email, phone, address, or type label. An empty keyword
// matches everything. Collection order is preserved.
func (s *Service) Search(keyword string) []Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := strings.ToLower(keyword)
	out := make([]Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if strings.Contains(strings.ToLower(c.Name), k) ||
			strings.Contains(strings.ToLower(c.Email), k) ||
			strings.Contains(strings.ToLower(c.Phone), k) ||
			strings.Contains(strings.ToLower(c.Address), k) ||
			strings.Contains(strings.ToLower(c.CustomerType.Label()), k) {
			out = append(out, c)
		}
	}
	return out
}

// Sort stably reorders the collection by the given column and remembers it
// as the current sort. An unknown column leaves both the order and the
// remembered state unchanged. The reorder applies to the stored collection,
// not just the returned view.
func (s *Service) Sort(column SortColumn, descending bool) []Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	less := lessFunc(column)
	if less == nil {
		return s.snapshot()
	}

	sort.SliceStable(s.customers, func(i, j int) bool {
		if descending {
			return less(s.customers[j], s.customers[i])
		}
		return less(s.customers[i], s.customers[j])
	})
	s.sort = SortState{Column: column, Descending: descending}

	return s.snapshot()
}

// CurrentSort returns the remembered sort state.
func (s *Service) CurrentSort() SortState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// ImportBatch replaces the entire collection with the supplied batch and
// persists it. No merging and no duplicate checking against prior state:
// this is a destructive operation and callers must confirm it with the end
// user first.
func (s *Service) ImportBatch(ctx context.Context, records []Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = records

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "customer batch imported", "count", len(records))
	return nil
}

// List returns a copy of the collection in its current order, for rendering.
func (s *Service) List() []Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Service) snapshot() []Customer {
	out := make([]Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// duplicateName reports whether another record (excluding excludeID) has the
// same name after trimming and case-folding.
func (s *Service) duplicateName(name string, excludeID int) bool {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, c := range s.customers {
		if c.ID != excludeID && strings.ToLower(strings.TrimSpace(c.Name)) == normalized {
			return true
		}
	}
	return false
}

func (s *Service) persist(ctx context.Context) error {
	if err := s.repo.SaveAll(ctx, s.customers); err != nil {
		s.log.Error(ctx, "saving customers", "error", err)
		return err
	}
	return nil
}

func lessFunc(column SortColumn) func(a, b Customer) bool {
	switch column {
	case ColumnID:
		return func(a, b Customer) bool { return a.ID < b.ID }
	case ColumnName:
		return func(a, b Customer) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case ColumnEmail:
		return func(a, b Customer) bool { return strings.ToLower(a.Email) < strings.ToLower(b.Email) }
	case ColumnPhone:
		return func(a, b Customer) bool { return a.Phone < b.Phone }
	case ColumnType:
		return func(a, b Customer) bool {
			return strings.ToLower(a.CustomerType.Label()) < strings.ToLower(b.CustomerType.Label())
		}
	case ColumnCreatedAt:
		// Lexicographic on the serialized timestamp, matching the on-disk form.
		return func(a, b Customer) bool {
			return a.CreatedAt.Format(time.RFC3339) < b.CreatedAt.Format(time.RFC3339)
		}
	default:
		return nil
	}
}

func nextID(records []Customer) int {
	max := 0
	for _, r := range records {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}
